// Package policy implements the pure authorization evaluators: the total
// order over staff roles and the total order over clearance levels. Nothing
// here touches storage; route guards and services call in before any mutation.
package policy

import "casetrack/internal/cms/model"

// RoleOrder is the global role hierarchy, most privileged first. Its ordering
// drives every threshold check; do not reorder.
var RoleOrder = []string{
	model.RoleAdmin,
	model.RoleInvestigator,
	model.RoleOfficer,
	model.RoleAuditor,
}

// RoleRank returns the position of a role in the hierarchy (0 is most
// privileged). Unknown roles report ok=false and must be treated as denied.
func RoleRank(role string) (int, bool) {
	for i, r := range RoleOrder {
		if r == role {
			return i, true
		}
	}
	return 0, false
}

// RoleDominates reports whether role a is at least as privileged as role b.
func RoleDominates(a, b string) bool {
	ra, ok := RoleRank(a)
	if !ok {
		return false
	}
	rb, ok := RoleRank(b)
	if !ok {
		return false
	}
	return ra <= rb
}

// Allowed decides whether role may perform an operation open to the given
// roles. Naming a role opens the operation to every role ranked above it as
// well: the check is a threshold against the least privileged role named, not
// set membership. An empty allowed set denies unconditionally, as does an
// unknown role.
func Allowed(role string, allowed []string) bool {
	rank, ok := RoleRank(role)
	if !ok {
		return false
	}

	threshold := -1
	for _, a := range allowed {
		r, ok := RoleRank(a)
		if !ok {
			continue
		}
		if r > threshold {
			threshold = r
		}
	}
	if threshold < 0 {
		return false
	}

	return rank <= threshold
}
