package user

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "user"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

func (r Role) String() string {
	return string(r)
}
