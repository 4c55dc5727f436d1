package services

import (
	"fmt"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"
)

// AccessPolicy is a domain service deciding whether a principal is allowed
// to perform an operation.
//
// Business rules:
//   - A principal satisfies a role requirement when its role ranks at or
//     above the required role (admin > operator > user)
//   - Resource owners may always act on their own resources
//   - Operators and admins may act on any user's resources
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize verifies that the principal holds at least the required role.
// It returns an access forbidden error when the role ranks below the requirement.
func (p AccessPolicy) Authorize(principal user.Principal, required user.Role) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	if err := required.Validate(); err != nil {
		return err
	}

	if !principal.Role.Satisfies(required) {
		return errs.NewAccessForbiddenError(
			fmt.Sprintf("role %s is required, principal has role %s", required, principal.Role))
	}

	return nil
}

// AuthorizeOwnerOr verifies that the principal either owns the resource
// identified by ownerID or holds at least the elevated role.
func (p AccessPolicy) AuthorizeOwnerOr(principal user.Principal, ownerID kernel.UUID, elevated user.Role) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	if err := ownerID.Validate(); err != nil {
		return err
	}

	if principal.Owns(ownerID) {
		return nil
	}

	if principal.Role.Satisfies(elevated) {
		return nil
	}

	return errs.NewAccessForbiddenError("principal does not own the resource")
}
