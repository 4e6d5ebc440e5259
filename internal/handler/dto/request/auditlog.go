package request

import (
	"github.com/google/uuid"
)

type CreateAuditLogRequest struct {
	Action       string     `json:"action" binding:"required,min=1,max=100"`
	ResourceType string     `json:"resourceType" binding:"required,min=1,max=100"`
	ResourceID   *uuid.UUID `json:"resourceId,omitempty"`
	Detail       string     `json:"detail" binding:"max=2000"`
}

type BulkDeleteAuditLogsRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1,max=100"`
}
