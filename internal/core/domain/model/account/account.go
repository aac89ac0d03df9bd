// Package account holds the Account aggregate: every actor in the marketplace
// (customer, restaurant owner, rider, admin) is an account with exactly one
// role. The order engine never inspects credentials; it consumes the account's
// id and role through the transition policy.
package account

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for account operations.
var (
	// ErrEmailIsRequired is returned when creating an account without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrFullNameIsRequired is returned when creating an account without a name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
	// ErrPasswordHashIsRequired is returned when creating an account without a
	// password hash. Hashing itself happens at the request layer.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	// ErrAccountIsNotConstructed is returned when using an improperly
	// initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Account is the aggregate root for a platform user.
//
// Invariants:
//   - valid unique identifier
//   - non-empty email, full name, and password hash
//   - exactly one valid role, fixed at registration
type Account struct {
	id           kernel.UUID
	email        string
	passwordHash string
	fullName     string
	phone        string
	role         Role

	guard guard.ConstructorGuard
}

// NewAccount creates a validated Account. The password hash is produced by the
// request layer (bcrypt); the domain only requires it to be present. Phone is
// optional.
func NewAccount(id kernel.UUID, email, passwordHash, fullName, phone string, role Role) (*Account, error) {
	a := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setFullName(fullName),
		a.setPhone(phone),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account from persistence. It runs the same
// validation as NewAccount so corrupted rows surface as errors instead of
// invalid aggregates.
func RestoreAccount(id kernel.UUID, email, passwordHash, fullName, phone string, role Role) (*Account, error) {
	return NewAccount(id, email, passwordHash, fullName, phone, role)
}

// Validate ensures the Account was built through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Email returns the account's unique email address.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the stored password hash. Only the request layer's
// login flow compares against it.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// FullName returns the account holder's display name.
func (a *Account) FullName() string {
	return a.fullName
}

// Phone returns the optional contact phone number.
func (a *Account) Phone() string {
	return a.phone
}

// Role returns the account's role.
func (a *Account) Role() Role {
	return a.role
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrFullNameIsRequired
	}
	a.fullName = fullName
	return nil
}

func (a *Account) setPhone(phone string) error {
	a.phone = strings.TrimSpace(phone)
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
