package user

// Role decides which console actions a user may take. Ranks are ordered so
// that a higher role can do everything a lower one can.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

var roleRanks = map[Role]int{
	RoleStaff: 1,
	RoleAdmin: 2,
}

func NewRole(s string) (Role, error) {
	if r := Role(s); r.IsValid() {
		return r, nil
	}
	return "", ErrInvalidRole
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	_, ok := roleRanks[r]
	return ok
}

// AtLeast reports whether r ranks at or above min; unknown roles rank below everything.
func (r Role) AtLeast(min Role) bool {
	rank, ok := roleRanks[r]
	return ok && rank >= roleRanks[min]
}
