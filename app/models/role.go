package models

// Role is the closed set of profile roles. Permission checks are written
// against this enum only; unknown values never grant anything.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDirector Role = "director"
	RoleTeacher  Role = "teacher"
	RoleStudent  Role = "student"
	RoleParent   Role = "parent"
)

// DefaultRole is assigned by self-registration.
const DefaultRole = RoleStudent

// AllRoles lists every assignable role.
var AllRoles = []Role{RoleAdmin, RoleDirector, RoleTeacher, RoleStudent, RoleParent}

// ParseRole returns the matching role and whether the input was a known one.
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// CanManage is the permission decision for course-scoped management actions
// (editing the course, marking attendance, creating and grading tasks).
// Admins and directors manage everything; anyone else only what they own.
func CanManage(role Role, isOwner bool) bool {
	switch role {
	case RoleAdmin, RoleDirector:
		return true
	default:
		return isOwner
	}
}
