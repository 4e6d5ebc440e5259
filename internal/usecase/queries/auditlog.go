package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AuditLogView struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserEmail    string     `json:"user_email"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	Action       string     `json:"action"`
	ResourceType string     `json:"resource_type"`
	ResourceID   *uuid.UUID `json:"resource_id,omitempty"`
	Detail       string     `json:"detail,omitempty"`
	ClientIP     string     `json:"client_ip"`
	UserAgent    string     `json:"user_agent"`
	CreatedAt    time.Time  `json:"created_at"`
}

type AuditLogFilter struct {
	CompanyID    *uuid.UUID
	UserID       *uuid.UUID
	Action       string
	ResourceType string
	Search       string
	Page         int
	Limit        int
}

type AuditLogQueries interface {
	List(ctx context.Context, filter AuditLogFilter) ([]*AuditLogView, Pagination, error)
}

type AuditLogViewRepo interface {
	FindFiltered(ctx context.Context, filter AuditLogFilter, limit, offset int) ([]*AuditLogView, int64, error)
}

type auditLogQueriesImpl struct {
	repo AuditLogViewRepo
}

func NewAuditLogQueries(repo AuditLogViewRepo) AuditLogQueries {
	return &auditLogQueriesImpl{repo: repo}
}

func (q *auditLogQueriesImpl) List(ctx context.Context, filter AuditLogFilter) ([]*AuditLogView, Pagination, error) {
	page, limit, offset := NormalizePage(filter.Page, filter.Limit)

	items, total, err := q.repo.FindFiltered(ctx, filter, limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(total, page, limit), nil
}
