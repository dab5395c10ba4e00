package timeutil

import (
	"fmt"
	"time"
)

// TimeZoneDB resolves IANA zone identifiers to locations
type TimeZoneDB interface {
	// SystemDefault returns the host's local zone
	SystemDefault() *time.Location

	// ByID resolves an IANA identifier such as "Europe/Paris"
	ByID(id string) (*time.Location, error)
}

// systemDB reads the host's zoneinfo database
type systemDB struct{}

// NewSystemDB returns a TimeZoneDB backed by the host zone database
func NewSystemDB() TimeZoneDB {
	return systemDB{}
}

func (systemDB) SystemDefault() *time.Location {
	return time.Local
}

func (systemDB) ByID(id string) (*time.Location, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", id, err)
	}
	return loc, nil
}
