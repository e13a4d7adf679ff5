package domain

import "time"

const (
	StopSourceMoovit    = "Moovit"
	StopSourceSettepi   = "Settepi"
	StopSourceGenerated = "Generated"
)

// BusStop is a rider-facing pickup point.
type BusStop struct {
	ID        int64     `json:"id" db:"id"`
	StopID    string    `json:"stop_id" db:"stop_id"`
	Name      string    `json:"name" db:"name"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Source    string    `json:"source" db:"source"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (s BusStop) Coordinate() Coordinate {
	return Coordinate{Lat: s.Latitude, Lon: s.Longitude}
}

// DisplayName falls back to the stop identifier when the stop has no name.
func (s BusStop) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.StopID
}

func IsValidStopSource(s string) bool {
	switch s {
	case StopSourceMoovit, StopSourceSettepi, StopSourceGenerated:
		return true
	}
	return false
}

// BusStopCounts is used by the data management overview.
type BusStopCounts struct {
	Total    int `json:"total" db:"total"`
	Active   int `json:"active" db:"active"`
	Inactive int `json:"inactive" db:"-"`
}
