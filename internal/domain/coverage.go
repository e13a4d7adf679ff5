package domain

import "time"

// CoverageMesh is a named polygon describing a service-coverage area.
type CoverageMesh struct {
	ID        int64               `json:"id" db:"id"`
	Name      string              `json:"name" db:"name"`
	Version   string              `json:"version" db:"version"`
	CreatedAt time.Time           `json:"created_at" db:"created_at"`
	Points    []CoverageMeshPoint `json:"points" db:"-"`
}

// CoverageMeshPoint is one boundary vertex. Order is zero-based and caller-assigned.
type CoverageMeshPoint struct {
	MeshID    int64   `json:"-" db:"mesh_id"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Order     int     `json:"order" db:"point_order"`
}

type CoverageMeshSummary struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Version     string    `json:"version" db:"version"`
	PointsCount int       `json:"points_count" db:"points_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
