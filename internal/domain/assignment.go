package domain

import "time"

// EmployeeAssignment is the precomputed nearest stop and covering meshes for
// an employee with a registered location.
type EmployeeAssignment struct {
	UserID     int64     `json:"user_id" db:"user_id"`
	EmployeeID string    `json:"employee_id" db:"employee_id"`
	BusStopID  *int64    `json:"bus_stop_id" db:"bus_stop_id"`
	StopName   string    `json:"stop_name" db:"stop_name"`
	DistanceM  *float64  `json:"distance_m" db:"distance_m"`
	MeshIDs    []int64   `json:"mesh_ids" db:"-"`
	ComputedAt time.Time `json:"computed_at" db:"computed_at"`
}

func (a EmployeeAssignment) Covered() bool {
	return len(a.MeshIDs) > 0
}

type AssignmentSummary struct {
	Employees  int        `json:"employees" db:"employees"`
	Covered    int        `json:"covered" db:"covered"`
	Uncovered  int        `json:"uncovered" db:"uncovered"`
	ComputedAt *time.Time `json:"computed_at" db:"computed_at"`
}
