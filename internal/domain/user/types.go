package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleOrganizer       Role = "organizer"
	RoleReferee         Role = "referee"
	RoleVenueOwner      Role = "venue_owner"
	RolePersonalTrainer Role = "personal_trainer"
	RoleCommentator     Role = "commentator"
	RoleSuperAdmin      Role = "super_admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOrganizer, RoleReferee, RoleVenueOwner, RolePersonalTrainer, RoleCommentator, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// CanRunMatches reports whether the role may organize matches, e.g. offer referee slots.
func (r Role) CanRunMatches() bool {
	return r == RoleOrganizer || r == RoleSuperAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
