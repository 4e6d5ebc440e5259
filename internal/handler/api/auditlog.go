package api

import (
	"errors"
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditLogHandler struct {
	auditCommands commands.AuditLogCommands
	auditQueries  queries.AuditLogQueries
}

func NewAuditLogHandler(auditCommands commands.AuditLogCommands, auditQueries queries.AuditLogQueries) *AuditLogHandler {
	return &AuditLogHandler{
		auditCommands: auditCommands,
		auditQueries:  auditQueries,
	}
}

// @Summary List audit logs
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param action query string false "Action filter"
// @Param resourceType query string false "Resource type filter"
// @Param userId query string false "Actor filter"
// @Param search query string false "Free-text search"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ListResponse[resdto.AuditLogResponse]
// @Router /audit-logs [get]
func (h *AuditLogHandler) List(c *gin.Context) {
	actor, ok := queryActorFromContext(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	filter := queries.AuditLogFilter{
		CompanyID:    actor.CompanyID,
		UserID:       optionalUUIDQuery(c, "userId"),
		Action:       c.Query("action"),
		ResourceType: c.Query("resourceType"),
		Search:       c.Query("search"),
		Page:         page,
		Limit:        limit,
	}

	items, pagination, err := h.auditQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewListResponse(resdto.FromAuditLogViews(items), pagination))
}

// @Summary Record a manual audit entry
// @Tags audit-logs
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.CreateAuditLogRequest true "Entry"
// @Success 201
// @Router /audit-logs [post]
func (h *AuditLogHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req reqdto.CreateAuditLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.auditCommands.Create(c.Request.Context(), actor, req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusCreated)
}

// @Summary Delete an audit entry
// @Tags audit-logs
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /audit-logs/{id} [delete]
func (h *AuditLogHandler) Delete(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.auditCommands.Delete(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrAuditLogNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Audit log not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete multiple audit entries
// @Tags audit-logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkDeleteAuditLogsRequest true "IDs to delete"
// @Success 200 {object} map[string]int64
// @Router /audit-logs/bulk-delete [post]
func (h *AuditLogHandler) BulkDelete(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req reqdto.BulkDeleteAuditLogsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	deleted, err := h.auditCommands.BulkDelete(c.Request.Context(), actor, req.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
