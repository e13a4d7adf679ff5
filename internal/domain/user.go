package domain

import (
	"strings"
	"time"
)

const (
	RoleEmployee    = "EMPLOYEE"
	RoleHRAdmin     = "HR_ADMIN"
	RoleMasterAdmin = "MASTER_ADMIN"
)

const (
	EmployeeStatusActive     = "active"
	EmployeeStatusTerminated = "terminated"
)

const employeeIDLength = 5

type User struct {
	ID             int64      `json:"id" db:"id"`
	Username       string     `json:"username" db:"username"`
	Name           string     `json:"name" db:"name"`
	Email          string     `json:"email" db:"email"`
	PasswordHash   string     `json:"-" db:"password_hash"`
	Role           string     `json:"role" db:"role"`
	EmployeeID     string     `json:"employee_id" db:"employee_id"`
	Company        string     `json:"company" db:"company"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	ActiveAsOf     *time.Time `json:"active_as_of" db:"active_as_of"`
	EmployeeStatus string     `json:"employee_status" db:"employee_status"`
	Shift          string     `json:"shift" db:"shift"`
	Utilization    bool       `json:"utilization" db:"utilization"`
	Latitude       *float64   `json:"latitude" db:"latitude"`
	Longitude      *float64   `json:"longitude" db:"longitude"`
	StreetName     string     `json:"street_name" db:"street_name"`
	AddressNumber  string     `json:"address_number" db:"address_number"`
	Neighborhood   string     `json:"neighborhood" db:"neighborhood"`
	PostalCode     string     `json:"postal_code" db:"postal_code"`
	District       string     `json:"district" db:"district"`
	State          string     `json:"state" db:"state"`
	Country        string     `json:"country" db:"country"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// Location reports the employee's registered coordinate, if both halves are set.
func (u *User) Location() (Coordinate, bool) {
	return LocationOf(u.Latitude, u.Longitude)
}

func (u *User) IsAdmin() bool {
	return IsAdminRole(u.Role)
}

func IsAdminRole(role string) bool {
	r := strings.ToUpper(role)
	return r == RoleHRAdmin || r == RoleMasterAdmin
}

func IsValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleHRAdmin, RoleMasterAdmin:
		return true
	}
	return false
}

// NormalizeEmployeeID left-pads the id with zeros to five characters and
// truncates anything longer ("37" -> "00037", "1234567" -> "12345").
// Counts runes, not bytes.
func NormalizeEmployeeID(id string) string {
	runes := []rune(strings.TrimSpace(id))
	if len(runes) == 0 {
		return ""
	}
	if len(runes) < employeeIDLength {
		return strings.Repeat("0", employeeIDLength-len(runes)) + string(runes)
	}
	return string(runes[:employeeIDLength])
}

// UserFilter drives the paginated user listing. Limit 0 returns every match.
type UserFilter struct {
	Role           string
	Shift          string
	Company        string
	IsActive       *bool
	EmployeeStatus string
	Query          string
	OrderBy        string
	Descending     bool
	Offset         int
	Limit          int
}

// UserPatch carries a partial update. Nil fields are left untouched.
// Latitude/Longitude are applied together; ClearLocation removes both.
type UserPatch struct {
	Name           *string
	Email          *string
	Utilization    *bool
	Shift          *string
	Latitude       *float64
	Longitude      *float64
	ClearLocation  bool
	StreetName     *string
	AddressNumber  *string
	Neighborhood   *string
	PostalCode     *string
	District       *string
	State          *string
	Country        *string
	Company        *string
	IsActive       *bool
	EmployeeStatus *string
	ActiveAsOf     *time.Time
}

// Apply copies the set fields of the patch onto u.
func (p UserPatch) Apply(u *User) {
	setString(&u.Name, p.Name)
	setString(&u.Email, p.Email)
	setString(&u.Shift, p.Shift)
	setString(&u.StreetName, p.StreetName)
	setString(&u.AddressNumber, p.AddressNumber)
	setString(&u.Neighborhood, p.Neighborhood)
	setString(&u.PostalCode, p.PostalCode)
	setString(&u.District, p.District)
	setString(&u.State, p.State)
	setString(&u.Country, p.Country)
	setString(&u.Company, p.Company)
	setString(&u.EmployeeStatus, p.EmployeeStatus)
	if p.Utilization != nil {
		u.Utilization = *p.Utilization
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.ActiveAsOf != nil {
		t := *p.ActiveAsOf
		u.ActiveAsOf = &t
	}
	if p.ClearLocation {
		u.Latitude, u.Longitude = nil, nil
	} else if p.Latitude != nil && p.Longitude != nil {
		lat, lon := *p.Latitude, *p.Longitude
		u.Latitude, u.Longitude = &lat, &lon
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// PrivacyConsent is created lazily for every user.
type PrivacyConsent struct {
	UserID          int64      `json:"-" db:"user_id"`
	Accepted        bool       `json:"accepted" db:"accepted"`
	AcceptedAt      *time.Time `json:"accepted_at" db:"accepted_at"`
	Version         string     `json:"version" db:"version"`
	LocationGranted bool       `json:"location_granted" db:"location_granted"`
}

const DefaultConsentVersion = "1.0"

// ConsentChange is a partial consent update.
type ConsentChange struct {
	Accepted        *bool
	LocationGranted *bool
	Version         *string
}

// Apply updates the consent. AcceptedAt is stamped the first time the consent
// becomes accepted (or when it is accepted without a timestamp) and cleared on revocation.
func (c *PrivacyConsent) Apply(change ConsentChange, now time.Time) {
	acceptedBefore := c.Accepted
	if change.Accepted != nil {
		c.Accepted = *change.Accepted
	}
	if change.LocationGranted != nil {
		c.LocationGranted = *change.LocationGranted
	}
	if change.Version != nil {
		c.Version = *change.Version
	}

	switch {
	case c.Accepted && (!acceptedBefore || c.AcceptedAt == nil):
		c.AcceptedAt = &now
	case !c.Accepted:
		c.AcceptedAt = nil
	}
}

// UserCounts is used by the data management overview.
type UserCounts struct {
	Total        int `json:"total" db:"total"`
	Employees    int `json:"employees" db:"employees"`
	Active       int `json:"active" db:"active"`
	WithLocation int `json:"with_location" db:"with_location"`
	Terminated   int `json:"terminated" db:"terminated"`
}
