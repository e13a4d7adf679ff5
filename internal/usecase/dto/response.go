package dto

import (
	"time"

	"github.com/shuttle-hr/internal/domain"
)

// LocationResponse - координаты сотрудника
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StopResponse - краткое описание остановки
type StopResponse struct {
	ID     int64   `json:"id"`
	StopID string  `json:"stop_id"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

func NewStopResponse(s domain.BusStop) StopResponse {
	return StopResponse{
		ID:     s.ID,
		StopID: s.StopID,
		Name:   s.DisplayName(),
		Lat:    s.Latitude,
		Lng:    s.Longitude,
	}
}

// NearestStopResponse - ближайшая остановка и расстояние до нее
type NearestStopResponse struct {
	Stop      StopResponse `json:"stop"`
	DistanceM float64      `json:"distance_m"`
}

// NearbyStopResponse - остановка в списке ближайших; distance_m only when the
// employee has a location
type NearbyStopResponse struct {
	StopResponse
	Source    string   `json:"source"`
	DistanceM *float64 `json:"distance_m,omitempty"`
}

// EmployeeRoutesResponse - active plan, or an empty routes list
type EmployeeRoutesResponse struct {
	*domain.RoutePlan
	Routes []domain.Route `json:"routes"`
}

// CoverageMeshRef - зона покрытия, содержащая точку
type CoverageMeshRef struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// EmployeeCoverageResponse - покрытие сотрудника
type EmployeeCoverageResponse struct {
	Location LocationResponse  `json:"location"`
	Covered  bool              `json:"covered"`
	Meshes   []CoverageMeshRef `json:"meshes"`
}

// UploadResult - результат загрузки файла
type UploadResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// CoverageUploadResult - результат загрузки зоны покрытия
type CoverageUploadResult struct {
	Status      string `json:"status"`
	MeshID      int64  `json:"mesh_id"`
	PointsCount int    `json:"points_count"`
	Format      string `json:"format"`
	Message     string `json:"message"`
}

// RouteUploadResult - результат загрузки GPX
type RouteUploadResult struct {
	Status string `json:"status"`
	domain.RouteUploadResult
	Message string `json:"message"`
}

// DeleteResult - количество удаленных записей
type DeleteResult struct {
	Status  string `json:"status"`
	Deleted int    `json:"deleted"`
}

// EmployeeRow - сотрудник в панели управления данными
type EmployeeRow struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    string    `json:"company"`
	Shift      string    `json:"shift"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewEmployeeRow(u domain.User) EmployeeRow {
	return EmployeeRow{
		ID:         u.ID,
		EmployeeID: u.EmployeeID,
		Name:       u.Name,
		Email:      u.Email,
		Company:    u.Company,
		Shift:      u.Shift,
		Latitude:   u.Latitude,
		Longitude:  u.Longitude,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}

// EmployeesPage - страница сотрудников
type EmployeesPage struct {
	Results    []EmployeeRow `json:"results"`
	TotalPages int           `json:"total_pages"`
	TotalCount int           `json:"total_count"`
}

// OverviewResponse - данные панели управления
type OverviewResponse struct {
	Role           string                       `json:"role"`
	Employees      EmployeesPage                `json:"employees"`
	BusStops       domain.BusStopCounts         `json:"bus_stops"`
	CoverageMeshes []domain.CoverageMeshSummary `json:"coverage_meshes"`
	RoutePlans     []domain.RoutePlanSummary    `json:"route_plans"`
	Assignments    *domain.AssignmentSummary    `json:"assignments,omitempty"`
}

// ConsentResponse - согласие пользователя
type ConsentResponse struct {
	Accepted        bool       `json:"accepted"`
	AcceptedAt      *time.Time `json:"accepted_at"`
	Version         string     `json:"version"`
	LocationGranted bool       `json:"location_granted"`
}

func NewConsentResponse(c *domain.PrivacyConsent) ConsentResponse {
	return ConsentResponse{
		Accepted:        c.Accepted,
		AcceptedAt:      c.AcceptedAt,
		Version:         c.Version,
		LocationGranted: c.LocationGranted,
	}
}

// HealthResponse - состояние сервиса
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
