package models

// Airport is read-only reference data
type Airport struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
	City string `json:"city" db:"city"`
}
