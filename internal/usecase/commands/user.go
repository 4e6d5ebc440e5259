package commands

import (
	"context"

	"marketplace-api/internal/domain/user"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/password"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken     = errs.New("email already registered")
	ErrInvalidUserArg = errs.New("invalid user input")
)

type UserCommands interface {
	Create(ctx context.Context, actor ActorContext, req reqdto.CreateUserRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor ActorContext, id uuid.UUID, req reqdto.UpdateUserRequest) error
	SetActive(ctx context.Context, actor ActorContext, id uuid.UUID, active bool) error
	Delete(ctx context.Context, actor ActorContext, id uuid.UUID) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (c *userCommandsImpl) Create(ctx context.Context, actor ActorContext, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUserArg)
	}

	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUserArg)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUserArg)
	}

	// new users join the acting admin's tenant
	newUser := user.NewUser(email, hash, role, actor.CompanyID).
		WithProfile(req.FirstName, req.LastName, req.Phone, req.Address)

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Users().Create(ctx, tx.DB(), newUser)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return err
		}
		id = created

		return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
			ActorID:      actor.UserID,
			CompanyID:    actor.CompanyID,
			Action:       "user.created",
			ResourceType: "user",
			ResourceID:   &id,
			Detail:       email.Value(),
			ClientIP:     actor.ClientIP,
			UserAgent:    actor.UserAgent,
		})
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (c *userCommandsImpl) Update(ctx context.Context, actor ActorContext, id uuid.UUID, req reqdto.UpdateUserRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().UpdateProfile(ctx, tx.DB(), id, req.FirstName, req.LastName, req.Phone, req.Address); err != nil {
			return markNotFound(err, ErrUserNotFound)
		}

		return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
			ActorID:      actor.UserID,
			CompanyID:    actor.CompanyID,
			Action:       "user.updated",
			ResourceType: "user",
			ResourceID:   &id,
			Detail:       req.FirstName + " " + req.LastName,
			ClientIP:     actor.ClientIP,
			UserAgent:    actor.UserAgent,
		})
	})
}

// Delete deactivates the account instead of removing the row; audit entries
// keep a resolvable actor.
func (c *userCommandsImpl) Delete(ctx context.Context, actor ActorContext, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().SetActive(ctx, tx.DB(), id, false); err != nil {
			return markNotFound(err, ErrUserNotFound)
		}

		return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
			ActorID:      actor.UserID,
			CompanyID:    actor.CompanyID,
			Action:       "user.deleted",
			ResourceType: "user",
			ResourceID:   &id,
			ClientIP:     actor.ClientIP,
			UserAgent:    actor.UserAgent,
		})
	})
}

func (c *userCommandsImpl) SetActive(ctx context.Context, actor ActorContext, id uuid.UUID, active bool) error {
	action := "user.deactivated"
	if active {
		action = "user.activated"
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().SetActive(ctx, tx.DB(), id, active); err != nil {
			return markNotFound(err, ErrUserNotFound)
		}

		return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
			ActorID:      actor.UserID,
			CompanyID:    actor.CompanyID,
			Action:       action,
			ResourceType: "user",
			ResourceID:   &id,
			ClientIP:     actor.ClientIP,
			UserAgent:    actor.UserAgent,
		})
	})
}
