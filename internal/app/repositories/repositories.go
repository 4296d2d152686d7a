package repositories

import (
	"github.com/yigit/airlinehub/internal/db"
	"github.com/yigit/airlinehub/internal/pkg/apperrors"
)

// ErrNotFound is returned when a row does not exist
var ErrNotFound = apperrors.ErrResourceNotFound

// Repositories holds all the repository instances
type Repositories struct {
	AirlineRepository *AirlineRepository
	AirportRepository *AirportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.Database) *Repositories {
	return &Repositories{
		AirlineRepository: NewAirlineRepository(database),
		AirportRepository: NewAirportRepository(database),
	}
}
