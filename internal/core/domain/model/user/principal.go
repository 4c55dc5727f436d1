package user

import "docflow/internal/core/domain/model/kernel"

// Principal is the authenticated identity attached to a request after
// token verification. It carries only what authorization decisions need:
// who the caller is and what role they hold.
type Principal struct {
	ID   kernel.UUID
	Role Role
}

// Validate checks that the principal carries a usable identity and role.
func (p Principal) Validate() error {
	if err := p.ID.Validate(); err != nil {
		return err
	}
	return p.Role.Validate()
}

// Owns reports whether the principal is the owner of a resource belonging
// to ownerID.
func (p Principal) Owns(ownerID kernel.UUID) bool {
	return p.ID.IsEqual(ownerID)
}
