package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"
)

type AuditLogReadStore struct {
	db db.DBTX
}

func NewAuditLogReadStore(dbtx db.DBTX) *AuditLogReadStore {
	return &AuditLogReadStore{db: dbtx}
}

func (r *AuditLogReadStore) FindFiltered(ctx context.Context, filter queries.AuditLogFilter, limit, offset int) ([]*queries.AuditLogView, int64, error) {
	const query = `
		SELECT a.id, a.actor_id, u.email, a.company_id, a.action,
		       a.resource_type, a.resource_id, COALESCE(a.detail, ''),
		       a.client_ip, a.user_agent, a.created_at,
		       count(*) OVER ()
		FROM audit_logs a
		JOIN users u ON u.id = a.actor_id
		WHERE ($1::uuid IS NULL OR a.company_id = $1)
		  AND ($2::uuid IS NULL OR a.actor_id = $2)
		  AND ($3 = '' OR a.action = $3)
		  AND ($4 = '' OR a.resource_type = $4)
		  AND ($5 = '' OR a.detail ILIKE '%' || $5 || '%' OR u.email ILIKE '%' || $5 || '%')
		ORDER BY a.created_at DESC, a.id
		LIMIT $6 OFFSET $7
	`

	rows, err := r.db.Query(ctx, query,
		filter.CompanyID, filter.UserID, filter.Action, filter.ResourceType, filter.Search,
		limit, offset,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to find audit logs", err)
	}
	defer rows.Close()

	var (
		items []*queries.AuditLogView
		total int64
	)
	for rows.Next() {
		var v queries.AuditLogView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.UserEmail, &v.CompanyID, &v.Action,
			&v.ResourceType, &v.ResourceID, &v.Detail,
			&v.ClientIP, &v.UserAgent, &v.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan audit log row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate audit logs", err)
	}

	return items, total, nil
}
