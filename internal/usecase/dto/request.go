package dto

import "time"

// NearbyStopsRequest - параметры поиска ближайших остановок.
// nil Limit - значение по умолчанию; явный limit должен быть >= 1.
type NearbyStopsRequest struct {
	Limit *int `query:"limit" validate:"omitempty,min=1"`
}

// BusStopRequest - создание/обновление остановки
type BusStopRequest struct {
	StopID    string   `json:"stop_id" validate:"required,max=50"`
	Name      string   `json:"name" validate:"max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Source    string   `json:"source" validate:"omitempty,oneof=Moovit Settepi Generated"`
	IsActive  *bool    `json:"is_active"`
}

// CoverageMeshPointRequest - вершина зоны покрытия
type CoverageMeshPointRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Order     *int     `json:"order" validate:"omitempty,min=0"`
}

// CoverageMeshRequest - создание зоны покрытия из JSON
type CoverageMeshRequest struct {
	Name    string                     `json:"name" validate:"max=255"`
	Version string                     `json:"version" validate:"max=50"`
	Points  []CoverageMeshPointRequest `json:"points" validate:"required,min=1,dive"`
}

// UserListRequest - фильтры списка пользователей
type UserListRequest struct {
	Page           int    `query:"page" validate:"omitempty,min=1"`
	PageSize       int    `query:"page_size" validate:"omitempty,min=1"`
	Shift          string `query:"shift"`
	Company        string `query:"company"`
	IsActive       string `query:"is_active"`
	EmployeeStatus string `query:"employee_status"`
	Q              string `query:"q"`
	Ordering       string `query:"ordering"`
}

// UserUpdateRequest - частичное обновление пользователя
type UserUpdateRequest struct {
	Name           *string    `json:"name" validate:"omitempty,max=255"`
	Email          *string    `json:"email" validate:"omitempty,email"`
	Utilization    *bool      `json:"utilization"`
	Shift          *string    `json:"shift" validate:"omitempty,oneof=FIXED_8HRS MIXED_8HRS MIXED_12HRS"`
	Latitude       *float64   `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude      *float64   `json:"longitude" validate:"omitempty,min=-180,max=180"`
	ClearLocation  bool       `json:"clear_location"`
	StreetName     *string    `json:"street_name" validate:"omitempty,max=255"`
	AddressNumber  *string    `json:"address_number" validate:"omitempty,max=20"`
	Neighborhood   *string    `json:"neighborhood" validate:"omitempty,max=255"`
	PostalCode     *string    `json:"postal_code" validate:"omitempty,max=10"`
	District       *string    `json:"district" validate:"omitempty,max=255"`
	State          *string    `json:"state" validate:"omitempty,max=255"`
	Country        *string    `json:"country" validate:"omitempty,max=255"`
	Company        *string    `json:"company" validate:"omitempty,max=255"`
	IsActive       *bool      `json:"is_active"`
	EmployeeStatus *string    `json:"employee_status" validate:"omitempty,oneof=active terminated"`
	ActiveAsOf     *time.Time `json:"active_as_of"`
}

// RegisterRequest - регистрация пользователя администратором
type RegisterRequest struct {
	Username   string   `json:"username" validate:"required,min=3,max=150"`
	Password   string   `json:"password" validate:"required,min=8,max=128"`
	Email      string   `json:"email" validate:"omitempty,email"`
	Name       string   `json:"name" validate:"max=255"`
	Role       string   `json:"role" validate:"omitempty,oneof=EMPLOYEE HR_ADMIN MASTER_ADMIN"`
	EmployeeID string   `json:"employee_id" validate:"max=20"`
	Company    string   `json:"company" validate:"max=255"`
	Shift      string   `json:"shift" validate:"omitempty,oneof=FIXED_8HRS MIXED_8HRS MIXED_12HRS"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// ConsentUpdateRequest - изменение согласия на обработку данных
type ConsentUpdateRequest struct {
	Accepted        *bool   `json:"accepted"`
	LocationGranted *bool   `json:"location_granted"`
	Version         *string `json:"version" validate:"omitempty,max=20"`
}

// OverviewRequest - параметры панели управления данными
type OverviewRequest struct {
	Q       string `query:"q"`
	Sort    string `query:"sort"`
	Dir     string `query:"dir"`
	ShowAll string `query:"show_all"`
	Page    int    `query:"page"`
}

// DeleteEmployeesRequest - удаление сотрудников
type DeleteEmployeesRequest struct {
	SelectedIDs []int64 `json:"selected_ids" form:"selected_ids"`
}

// DeleteCoverageMeshRequest - удаление зоны покрытия (все, если mesh_id не указан)
type DeleteCoverageMeshRequest struct {
	MeshID *int64 `json:"mesh_id" form:"mesh_id"`
}

// DeleteRouteRequest - удаление маршрута и/или плана
type DeleteRouteRequest struct {
	RouteID *int64 `json:"route_id" form:"route_id"`
	PlanID  *int64 `json:"plan_id" form:"plan_id"`
}

// RouteUploadRequest - поля формы загрузки GPX
type RouteUploadRequest struct {
	Name        string `form:"name" validate:"required,max=255"`
	RouteType   string `form:"route_type" validate:"omitempty,oneof=FIXED_8HRS MIXED_8HRS MIXED_12HRS"`
	IsActive    string `form:"is_active"`
	PlanName    string `form:"plan_name" validate:"max=255"`
	BusSupplier string `form:"bus_supplier" validate:"max=255"`
	Color       string `form:"color" validate:"omitempty,hexcolor"`
}

// CoverageUploadRequest - поля формы загрузки зоны покрытия
type CoverageUploadRequest struct {
	Name    string `form:"name" validate:"max=255"`
	Version string `form:"version" validate:"max=50"`
}
