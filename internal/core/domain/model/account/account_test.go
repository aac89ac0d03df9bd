package account_test

import (
	"fmt"
	"testing"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("should create account with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := account.NewAccount(id, "alice@example.com", "$2a$10$hash", "Alice Tan", "+60123456789", account.RoleCustomer)

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "alice@example.com", a.Email())
		assert.Equal(t, "Alice Tan", a.FullName())
		assert.Equal(t, "+60123456789", a.Phone())
		assert.Equal(t, account.RoleCustomer, a.Role())
		require.NoError(t, a.Validate())
	})

	t.Run("should allow empty phone", func(t *testing.T) {
		a, err := account.NewAccount(kernel.NewUUID(), "bob@example.com", "$2a$10$hash", "Bob", "", account.RoleRider)

		require.NoError(t, err)
		assert.Empty(t, a.Phone())
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		testCases := []struct {
			name     string
			email    string
			hash     string
			fullName string
			expected error
		}{
			{"empty email", "", "$2a$10$hash", "Alice", account.ErrEmailIsRequired},
			{"empty password hash", "a@b.c", "", "Alice", account.ErrPasswordHashIsRequired},
			{"empty full name", "a@b.c", "$2a$10$hash", "  ", account.ErrFullNameIsRequired},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := account.NewAccount(kernel.NewUUID(), tc.email, tc.hash, tc.fullName, "", account.RoleCustomer)
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expected)
			})
		}
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "a@b.c", "$2a$10$hash", "Alice", "", account.RoleUnknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero UUID", func(t *testing.T) {
		_, err := account.NewAccount(kernel.UUID{}, "a@b.c", "$2a$10$hash", "Alice", "", account.RoleCustomer)
		require.Error(t, err)
	})
}

func TestAccount_Validate(t *testing.T) {
	t.Run("zero value account is rejected", func(t *testing.T) {
		var a account.Account
		require.ErrorIs(t, a.Validate(), account.ErrAccountIsNotConstructed)
	})

	t.Run("nil account is rejected", func(t *testing.T) {
		var a *account.Account
		require.ErrorIs(t, a.Validate(), account.ErrAccountIsNotConstructed)
	})
}

func TestRole_FromString(t *testing.T) {
	t.Run("should parse all valid roles", func(t *testing.T) {
		testCases := map[string]account.Role{
			"CUSTOMER":         account.RoleCustomer,
			"RESTAURANT_OWNER": account.RoleRestaurantOwner,
			"RIDER":            account.RoleRider,
			"ADMIN":            account.RoleAdmin,
		}

		for str, expected := range testCases {
			t.Run(str, func(t *testing.T) {
				role, err := account.RoleFromString(str)
				require.NoError(t, err)
				assert.Equal(t, expected, role)
				assert.Equal(t, str, role.String())
			})
		}
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		for _, s := range []string{"", "customer", "SUPERUSER"} {
			t.Run(fmt.Sprintf("rejects %q", s), func(t *testing.T) {
				_, err := account.RoleFromString(s)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should reject RoleUnknown and out-of-range values", func(t *testing.T) {
		for _, r := range []account.Role{account.RoleUnknown, account.Role(-1), account.Role(99)} {
			require.Error(t, r.Validate())
		}
	})

	t.Run("String is safe on invalid values", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", account.Role(42).String())
	})
}
