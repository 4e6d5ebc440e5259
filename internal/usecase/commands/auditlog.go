package commands

import (
	"context"

	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAuditLogNotFound = errs.New("audit log not found")

type AuditLogCommands interface {
	Create(ctx context.Context, actor ActorContext, req reqdto.CreateAuditLogRequest) error
	Delete(ctx context.Context, actor ActorContext, id uuid.UUID) error
	// BulkDelete removes the given ids within the actor's tenant and reports
	// how many rows actually went away.
	BulkDelete(ctx context.Context, actor ActorContext, ids []uuid.UUID) (int64, error)
}

type auditLogCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAuditLogCommands(uow shared.UnitOfWork) AuditLogCommands {
	return &auditLogCommandsImpl{uow: uow}
}

func (c *auditLogCommandsImpl) Create(ctx context.Context, actor ActorContext, req reqdto.CreateAuditLogRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
			ActorID:      actor.UserID,
			CompanyID:    actor.CompanyID,
			Action:       req.Action,
			ResourceType: req.ResourceType,
			ResourceID:   req.ResourceID,
			Detail:       req.Detail,
			ClientIP:     actor.ClientIP,
			UserAgent:    actor.UserAgent,
		})
	})
}

func (c *auditLogCommandsImpl) Delete(ctx context.Context, actor ActorContext, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.AuditLogs().DeleteByID(ctx, tx.DB(), id, actor.CompanyID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAuditLogNotFound
		}
		return nil
	})
}

func (c *auditLogCommandsImpl) BulkDelete(ctx context.Context, actor ActorContext, ids []uuid.UUID) (int64, error) {
	var deleted int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.AuditLogs().DeleteByIDs(ctx, tx.DB(), ids, actor.CompanyID)
		if err != nil {
			return err
		}
		deleted = affected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
