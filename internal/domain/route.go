package domain

import "time"

const DefaultRouteColor = "#2E86DE"

// RoutePlan groups routes. At most one plan is active at a time.
type RoutePlan struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"route_plan_name" db:"route_plan_name"`
	BusSupplier string    `json:"bus_supplier" db:"bus_supplier"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Routes      []Route   `json:"routes" db:"-"`
}

type Route struct {
	ID          int64             `json:"id" db:"id"`
	PlanID      int64             `json:"-" db:"plan_id"`
	Name        string            `json:"route_name" db:"route_name"`
	Shift       string            `json:"shift" db:"shift"`
	Color       string            `json:"color" db:"color"`
	Stops       []RouteStopPoint  `json:"stops" db:"-"`
	Trackpoints []RouteTrackPoint `json:"trackpoints" db:"-"`
}

type RouteStopPoint struct {
	RouteID   int64   `json:"-" db:"route_id"`
	StopName  string  `json:"stop_name" db:"stop_name"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Order     int     `json:"order" db:"point_order"`
}

type RouteTrackPoint struct {
	RouteID   int64   `json:"-" db:"route_id"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Order     int     `json:"order" db:"point_order"`
}

type RoutePlanSummary struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"route_plan_name" db:"route_plan_name"`
	BusSupplier string    `json:"bus_supplier" db:"bus_supplier"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	RoutesCount int       `json:"routes_count" db:"routes_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RouteUpload is a parsed route file plus the plan it should be attached to.
// The plan is looked up by name and created when missing.
type RouteUpload struct {
	PlanName    string
	BusSupplier string
	Activate    bool
	Route       Route
}

type RouteUploadResult struct {
	RouteID     int64 `json:"route_id"`
	PlanID      int64 `json:"plan_id"`
	PlanCreated bool  `json:"plan_created"`
	TrackPoints int   `json:"track_points"`
	StopPoints  int   `json:"stop_points"`
}
