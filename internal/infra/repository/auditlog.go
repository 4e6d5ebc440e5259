package repository

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{}
}

func (r *AuditLogRepository) Insert(ctx context.Context, dbtx db.DBTX, entry shared.AuditEntry) error {
	const query = `
		INSERT INTO audit_logs (
			id, company_id, actor_id, action, resource_type,
			resource_id, detail, client_ip, user_agent
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := dbtx.Exec(ctx, query,
		uuid.New(),
		entry.CompanyID,
		entry.ActorID,
		entry.Action,
		entry.ResourceType,
		entry.ResourceID,
		entry.Detail,
		entry.ClientIP,
		entry.UserAgent,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert audit log", err)
	}

	return nil
}

// Deletes are tenant-scoped: a nil companyID means the platform admin and
// matches every tenant.
func (r *AuditLogRepository) DeleteByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, companyID *uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM audit_logs
		WHERE id = $1 AND ($2::uuid IS NULL OR company_id = $2)
	`

	tag, err := dbtx.Exec(ctx, query, id, companyID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete audit log", err)
	}

	return tag.RowsAffected(), nil
}

func (r *AuditLogRepository) DeleteByIDs(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID, companyID *uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM audit_logs
		WHERE id = ANY($1) AND ($2::uuid IS NULL OR company_id = $2)
	`

	tag, err := dbtx.Exec(ctx, query, ids, companyID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to bulk delete audit logs", err)
	}

	return tag.RowsAffected(), nil
}
