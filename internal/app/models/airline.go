package models

// Airline is an operator serving zero or more airports
type Airline struct {
	ID             int64            `json:"id" db:"id"`
	Name           string           `json:"name" db:"name"`
	AirlineAirport []AirlineAirport `json:"airlineAirport" db:"-"`
}

// AirlineAirport links one airline to one airport.
// The (airline, airport) pair is not unique.
type AirlineAirport struct {
	ID        int64 `json:"id" db:"id"`
	AirlineID int64 `json:"airlineId" db:"airline_id"`
	AirportID int64 `json:"airportId" db:"airport_id"`
}

// AirportIDs returns the airport ids of the airline's links in link order
func (a *Airline) AirportIDs() []int64 {
	ids := make([]int64, 0, len(a.AirlineAirport))
	for _, link := range a.AirlineAirport {
		ids = append(ids, link.AirportID)
	}
	return ids
}
