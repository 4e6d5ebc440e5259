package api

import (
	"net/http"

	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentQueries queries.PaymentQueries
}

func NewPaymentHandler(paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{paymentQueries: paymentQueries}
}

// @Summary List payments visible to the caller
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ListResponse[resdto.PaymentResponse]
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	actor, ok := queryActorFromContext(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	filter := queries.PaymentFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	items, pagination, err := h.paymentQueries.ListForActor(c.Request.Context(), actor, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewListResponse(resdto.FromPaymentViews(items), pagination))
}
