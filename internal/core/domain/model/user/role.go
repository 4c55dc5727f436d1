package user

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Role classifies a user's access level. Roles form a total order
// (user < operator < admin): a required role is satisfied by any role
// greater than or equal to it.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// RoleUser is the default role assigned at registration.
	RoleUser

	// RoleOperator can update order statuses and trigger analyses
	// for any user's orders.
	RoleOperator

	// RoleAdmin has full access, including all operator capabilities.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "unknown",
		RoleUser:     "user",
		RoleOperator: "operator",
		RoleAdmin:    "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:     "user",
		RoleOperator: "operator",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses the persisted role name. Returns an error for
// anything outside the enumerated set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the Role is one of the enumerated valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the persisted name of the role.
// Implements fmt.Stringer and is safe to call on invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Satisfies reports whether this role meets the required level.
// Role ordering: user < operator < admin.
func (r Role) Satisfies(required Role) bool {
	if r.Validate() != nil || required.Validate() != nil {
		return false
	}
	return r >= required
}
