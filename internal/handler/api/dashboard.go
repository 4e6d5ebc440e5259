package api

import (
	"net/http"

	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQueries: dashboardQueries}
}

// @Summary Admin overview
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AdminDashboardResponse
// @Router /dashboard/admin [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	view, err := h.dashboardQueries.AdminOverview(c.Request.Context(), middleware.GetCompanyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdminDashboard(view))
}

// @Summary Provider overview
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProviderDashboardResponse
// @Router /dashboard/provider [get]
func (h *DashboardHandler) Provider(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.dashboardQueries.ProviderOverview(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProviderDashboard(view))
}
