package domain

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

// LocationOf returns the coordinate for an optional lat/lon pair. Either side
// missing means "no location".
func LocationOf(lat, lon *float64) (Coordinate, bool) {
	if lat == nil || lon == nil {
		return Coordinate{}, false
	}
	return Coordinate{Lat: *lat, Lon: *lon}, true
}

// Shift types shared by employees and routes.
const (
	ShiftFixed8  = "FIXED_8HRS"
	ShiftMixed8  = "MIXED_8HRS"
	ShiftMixed12 = "MIXED_12HRS"
)

func IsValidShift(s string) bool {
	switch s {
	case ShiftFixed8, ShiftMixed8, ShiftMixed12:
		return true
	}
	return false
}
