package api

import (
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	catalogCommands commands.CatalogCommands
	providerQueries queries.ProviderQueries
}

func NewProviderHandler(catalogCommands commands.CatalogCommands, providerQueries queries.ProviderQueries) *ProviderHandler {
	return &ProviderHandler{
		catalogCommands: catalogCommands,
		providerQueries: providerQueries,
	}
}

// @Summary List providers
// @Tags providers
// @Produce json
// @Param search query string false "Name search"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ListResponse[resdto.ProviderResponse]
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	filter := queries.ProviderFilter{
		CompanyID: optionalUUIDQuery(c, "companyId"),
		Search:    c.Query("search"),
		Page:      page,
		Limit:     limit,
	}

	items, pagination, err := h.providerQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewListResponse(resdto.FromProviderViews(items), pagination))
}

// @Summary Get a provider
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} resdto.ProviderResponse
// @Failure 404 {object} map[string]string
// @Router /providers/{id} [get]
func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.providerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Provider not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProviderView(view))
}

// @Summary Create a provider profile
// @Tags providers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProviderRequest true "Provider"
// @Success 201 {object} map[string]string
// @Router /providers [post]
func (h *ProviderHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req reqdto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateProvider(c.Request.Context(), actor, req)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update a provider profile
// @Tags providers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param request body reqdto.UpdateProviderRequest true "Provider"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /providers/{id} [put]
func (h *ProviderHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateProvider(c.Request.Context(), actor, id, req); err != nil {
		writeCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete a provider profile
// @Tags providers
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /providers/{id} [delete]
func (h *ProviderHandler) Delete(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogCommands.DeleteProvider(c.Request.Context(), actor, id); err != nil {
		writeCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
