package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

const minPasswordLength = 8

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsTooShort = errors.New("password must be at least 8 characters")
	ErrFullNameIsRequired = errors.New("full name is required")
)

// RegisterAccountCommand represents a request to register a new account with
// a chosen role. The password travels in plain text only as far as the
// handler, which stores a bcrypt hash.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	email     string
	password  string
	fullName  string
	phone     string
	role      account.Role

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Validates the account ID, email, password length, full name, and role.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	email, password, fullName, phone string,
	role account.Role,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setFullName(fullName),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	cmd.phone = strings.TrimSpace(phone)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Email returns the account's email address.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Password returns the plain-text password to be hashed by the handler.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// FullName returns the account holder's full name.
func (c RegisterAccountCommand) FullName() string {
	return c.fullName
}

// Phone returns the account holder's phone number, possibly empty.
func (c RegisterAccountCommand) Phone() string {
	return c.phone
}

// Role returns the role the account registers as.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = strings.ToLower(email)
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
