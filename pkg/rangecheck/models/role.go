package models

// Role is a logical sheet role within the input workbook.
type Role string

const (
	// RoleSensed is the grid of measured values being checked.
	RoleSensed Role = "sensed"
	// RoleLowerBound is the grid holding the acceptable floor per cell.
	RoleLowerBound Role = "lower_bound"
	// RoleUpperBound is the grid holding the acceptable ceiling per cell.
	RoleUpperBound Role = "upper_bound"
	// RoleMidband is an optional reference grid; detected and reported
	// but never consumed by classification.
	RoleMidband Role = "midband"
)

// Roles lists every role in detection order.
var Roles = []Role{RoleSensed, RoleLowerBound, RoleUpperBound, RoleMidband}

// RequiredRoles lists the roles that must resolve for a run to proceed.
var RequiredRoles = []Role{RoleSensed, RoleLowerBound, RoleUpperBound}

// DisplayName returns the user-facing name of the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleSensed:
		return "Room Data"
	case RoleLowerBound:
		return "Min"
	case RoleUpperBound:
		return "Max"
	case RoleMidband:
		return "Midband"
	default:
		return string(r)
	}
}

// Keywords returns the lower-case keywords that claim the role during
// detection, tested by containment against sheet titles and cell text.
func (r Role) Keywords() []string {
	switch r {
	case RoleSensed:
		return []string{"sensed value", "room"}
	case RoleLowerBound:
		return []string{"min", "minimum"}
	case RoleUpperBound:
		return []string{"max", "maximum"}
	case RoleMidband:
		return []string{"midband"}
	default:
		return nil
	}
}

// RoleMapping maps resolved roles to their grids. It is built once per
// run by role detection and never mutated afterwards; an unresolved
// role is simply absent.
type RoleMapping struct {
	grids map[Role]*Grid
}

// NewRoleMapping creates an empty mapping.
func NewRoleMapping() RoleMapping {
	return RoleMapping{grids: make(map[Role]*Grid)}
}

// Assign claims a role for a grid. An already-resolved role keeps its
// first claimant.
func (m RoleMapping) Assign(role Role, g *Grid) {
	if _, ok := m.grids[role]; ok {
		return
	}
	m.grids[role] = g
}

// Resolved reports whether the role has been claimed.
func (m RoleMapping) Resolved(role Role) bool {
	_, ok := m.grids[role]
	return ok
}

// Grid returns the grid claimed by the role.
func (m RoleMapping) Grid(role Role) (*Grid, bool) {
	g, ok := m.grids[role]
	return g, ok
}

// MissingRequired returns the required roles left unresolved, in
// detection order.
func (m RoleMapping) MissingRequired() []Role {
	var missing []Role
	for _, role := range RequiredRoles {
		if !m.Resolved(role) {
			missing = append(missing, role)
		}
	}
	return missing
}
