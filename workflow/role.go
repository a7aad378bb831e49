package workflow

import "gamepress-cms/models"

// Actor is the resolved identity performing a transition, as supplied by
// the authentication layer.
type Actor struct {
	ID   uint
	Role models.UserRole
}

// roleOrder fixes the total order over roles, lowest privilege first.
var roleOrder = map[models.UserRole]int{
	models.RoleUser:         0,
	models.RoleModerator:    1,
	models.RoleEditor:       2,
	models.RoleSeniorEditor: 3,
	models.RoleAdmin:        4,
	models.RoleSysadmin:     5,
}

// RoleRank returns the position of role in the privilege order, or -1 for
// an unknown role value.
func RoleRank(role models.UserRole) int {
	rank, ok := roleOrder[role]
	if !ok {
		return -1
	}
	return rank
}

// Dominates reports whether actor's role sits at or above required in the
// privilege order. Unknown roles never dominate anything.
func Dominates(actor, required models.UserRole) bool {
	ar, rr := RoleRank(actor), RoleRank(required)
	return ar >= 0 && rr >= 0 && ar >= rr
}
