package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmailAlreadyRegistered is returned when registering with an email that
// already belongs to another account.
var ErrEmailAlreadyRegistered = errors.New("email already registered")

// RegisterAccountCommandHandler handles account registration. Hashes the
// password with bcrypt and rejects duplicate emails before creating the
// aggregate.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account
// registration operations.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The duplicate check and the
// insert run in one transaction; the unique index on email catches the race
// between two concurrent registrations of the same address.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, command RegisterAccountCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(command.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	_, err = accountRepo.GetByEmail(ctx, command.Email())
	if err == nil {
		return ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := account.NewAccount(
		command.AccountID(),
		command.Email(),
		string(hash),
		command.FullName(),
		command.Phone(),
		command.Role(),
	)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
