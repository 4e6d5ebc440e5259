package api

import (
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	catalogCommands commands.CatalogCommands
	categoryQueries queries.CategoryQueries
}

func NewCategoryHandler(catalogCommands commands.CatalogCommands, categoryQueries queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{
		catalogCommands: catalogCommands,
		categoryQueries: categoryQueries,
	}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Param search query string false "Name search"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ListResponse[resdto.CategoryResponse]
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	filter := queries.CategoryFilter{
		CompanyID: optionalUUIDQuery(c, "companyId"),
		Search:    c.Query("search"),
		Page:      page,
		Limit:     limit,
	}

	items, pagination, err := h.categoryQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewListResponse(resdto.FromCategoryViews(items), pagination))
}

// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.categoryQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryView(view))
}

// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} map[string]string
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateCategory(c.Request.Context(), actor, req)
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update a category
// @Tags categories
// @Accept json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Category"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateCategory(c.Request.Context(), actor, id, req); err != nil {
		writeCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete a category
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogCommands.DeleteCategory(c.Request.Context(), actor, id); err != nil {
		writeCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
