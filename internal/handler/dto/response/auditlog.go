package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AuditLogResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	UserEmail    string     `json:"userEmail"`
	Action       string     `json:"action"`
	ResourceType string     `json:"resourceType"`
	ResourceID   *uuid.UUID `json:"resourceId,omitempty"`
	Detail       string     `json:"detail,omitempty"`
	ClientIP     string     `json:"clientIp"`
	UserAgent    string     `json:"userAgent"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

func FromAuditLogViews(items []*queries.AuditLogView) []*AuditLogResponse {
	result := make([]*AuditLogResponse, len(items))
	for i, item := range items {
		var resp AuditLogResponse
		_ = copier.Copy(&resp, item)
		result[i] = &resp
	}
	return result
}
