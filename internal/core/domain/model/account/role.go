package account

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role classifies an account and gates which order transitions its holder may
// request. The role itself carries no behavior; the transition policy reads it
// as input.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and may cancel them while still pending.
	RoleCustomer

	// RoleRestaurantOwner manages one restaurant, its menu, and kitchen-side
	// order transitions.
	RoleRestaurantOwner

	// RoleRider delivers orders and reports location updates.
	RoleRider

	// RoleAdmin may perform any transition.
	RoleAdmin
)

// getRoleStrings returns string forms for every Role, including invalid ones.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "UNKNOWN",
		RoleCustomer:        "CUSTOMER",
		RoleRestaurantOwner: "RESTAURANT_OWNER",
		RoleRider:           "RIDER",
		RoleAdmin:           "ADMIN",
	}
}

// getValidRoleStrings returns string forms for assignable roles only.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:        "CUSTOMER",
		RoleRestaurantOwner: "RESTAURANT_OWNER",
		RoleRider:           "RIDER",
		RoleAdmin:           "ADMIN",
	}
}

// RoleFromString parses the wire form ("CUSTOMER", "RESTAURANT_OWNER",
// "RIDER", "ADMIN") used in request payloads and stored tokens.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate rejects RoleUnknown and out-of-range values coming from external
// sources.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire form of the role. Implements fmt.Stringer and is
// safe on any value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
