package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/airlinehub/internal/pkg/apperrors"
)

// AirportIDList is the list of airport ids in an airline request.
// It accepts a JSON array of strings or numbers, or a comma-separated string,
// so both the create and update shapes share one schema.
type AirportIDList []int64

// UnmarshalJSON implements json.Unmarshaler
func (l *AirportIDList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	var tokens []string
	switch {
	case len(data) > 0 && data[0] == '"':
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return err
		}
		tokens = strings.Split(joined, ",")
	case len(data) > 0 && data[0] == '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		for _, item := range raw {
			token, err := rawToken(item)
			if err != nil {
				return err
			}
			tokens = append(tokens, token)
		}
	default:
		return apperrors.NewValidationError("airportIds must be an array or a comma-separated string")
	}

	ids, err := ParseAirportIDs(tokens)
	if err != nil {
		return err
	}
	*l = ids
	return nil
}

func rawToken(item json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(item, &n); err == nil {
		return n.String(), nil
	}
	return "", apperrors.NewValidationError("airportIds entries must be strings or integers")
}

// ParseAirportIDs converts textual airport ids to integers. Blank tokens are skipped.
func ParseAirportIDs(tokens []string) ([]int64, error) {
	ids := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAirportID, token)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CreateAirlineRequest is the body of POST /airlines
type CreateAirlineRequest struct {
	Name       string        `json:"name" binding:"required,max=255" example:"Delta"`
	AirportIDs AirportIDList `json:"airportIds" binding:"required" swaggertype:"array,string" example:"1,2"`
}

// UpdateAirlineRequest is the body of PATCH /airlines/{id}
type UpdateAirlineRequest struct {
	Name       string        `json:"name" binding:"required,max=255" example:"Delta Air Lines"`
	AirportIDs AirportIDList `json:"airportIds" binding:"required" swaggertype:"string" example:"1,2,3"`
}
