package model

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleStaff UserRole = "staff"
)

// User is a dashboard account. Credentials are stored for the UI's benefit
// and are not checked by any access-control gate in this service.
type User struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	Branch   string   `json:"branch"`
	Username string   `json:"username"`
	Password string   `json:"password"`
}
