package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	catalogCommands     commands.CatalogCommands
	serviceQueries      queries.ServiceQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewServiceHandler(catalogCommands commands.CatalogCommands, serviceQueries queries.ServiceQueries, availabilityQueries queries.AvailabilityQueries) *ServiceHandler {
	return &ServiceHandler{
		catalogCommands:     catalogCommands,
		serviceQueries:      serviceQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List services
// @Tags services
// @Produce json
// @Param categoryId query string false "Category filter"
// @Param providerId query string false "Provider filter"
// @Param search query string false "Name search"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ListResponse[resdto.ServiceListItemResponse]
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	filter := queries.ServiceFilter{
		CompanyID:  optionalUUIDQuery(c, "companyId"),
		CategoryID: optionalUUIDQuery(c, "categoryId"),
		ProviderID: optionalUUIDQuery(c, "providerId"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	}

	items, pagination, err := h.serviceQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewListResponse(resdto.FromServiceListItems(items), pagination))
}

// @Summary Get a service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.serviceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Available slots for a service on a date
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /services/{id}/availability [get]
func (h *ServiceHandler) Availability(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date must be YYYY-MM-DD",
		})
		return
	}

	view, err := h.availabilityQueries.SlotsFor(c.Request.Context(), id, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateService(c.Request.Context(), actor, req)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update a service
// @Tags services
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Service"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateService(c.Request.Context(), actor, id, req); err != nil {
		writeCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete a service
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogCommands.DeleteService(c.Request.Context(), actor, id); err != nil {
		writeCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCatalogNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Resource not found",
		})
	case errors.Is(err, commands.ErrCompanyRequired):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Actor must belong to a company",
		})
	case errors.Is(err, commands.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Category still has services",
		})
	case errors.Is(err, commands.ErrInvalidCatalogArg):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
