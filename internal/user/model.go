package user

type Role string

const (
	RoleAdmin Role = "admin"
	RoleBuyer Role = "buyer"
)

type User struct {
	ID       int
	Email    string
	Password string
	Role     Role
}
