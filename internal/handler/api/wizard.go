package api

import (
	"errors"
	"net/http"

	"marketplace-api/internal/domain/booking"
	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizardCommands commands.WizardCommands
}

func NewWizardHandler(wizardCommands commands.WizardCommands) *WizardHandler {
	return &WizardHandler{wizardCommands: wizardCommands}
}

// @Summary Start a booking wizard session
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartWizardRequest true "Service to book"
// @Success 201 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/wizard [post]
func (h *WizardHandler) Start(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req reqdto.StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.wizardCommands.Start(c.Request.Context(), actor.UserID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDraft(result.Draft))
}

// @Summary Get wizard session
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param token path string true "Session token"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/wizard/{token} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	actor, token, ok := h.sessionParams(c)
	if !ok {
		return
	}

	result, err := h.wizardCommands.Get(c.Request.Context(), actor.UserID, token)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraft(result.Draft))
}

// @Summary Update step-1 details
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token path string true "Session token"
// @Param request body reqdto.UpdateDetailsRequest true "Fields to update"
// @Success 200 {object} resdto.WizardResponse
// @Failure 409 {object} map[string]string
// @Router /bookings/wizard/{token}/details [put]
func (h *WizardHandler) UpdateDetails(c *gin.Context) {
	actor, token, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var req reqdto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.wizardCommands.UpdateDetails(c.Request.Context(), actor.UserID, token, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraft(result.Draft))
}

// @Summary Advance to the next step
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token path string true "Session token"
// @Param request body reqdto.NextStepRequest false "Step input"
// @Success 200 {object} resdto.WizardResponse
// @Failure 422 {object} resdto.ValidationErrorResponse
// @Router /bookings/wizard/{token}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	actor, token, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var req reqdto.NextStepRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.wizardCommands.Next(c.Request.Context(), actor.UserID, token, req, actor.ClientIP, actor.UserAgent)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if result.FieldErrors.Any() {
		c.JSON(http.StatusUnprocessableEntity, resdto.ValidationErrorResponse{
			Errors: result.FieldErrors,
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraft(result.Draft))
}

// @Summary Go back one step
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param token path string true "Session token"
// @Success 200 {object} resdto.WizardResponse
// @Failure 409 {object} map[string]string
// @Router /bookings/wizard/{token}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	actor, token, ok := h.sessionParams(c)
	if !ok {
		return
	}

	result, err := h.wizardCommands.Back(c.Request.Context(), actor.UserID, token)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraft(result.Draft))
}

func (h *WizardHandler) sessionParams(c *gin.Context) (commands.ActorContext, uuid.UUID, bool) {
	actor, ok := actorFromContext(c)
	if !ok {
		return commands.ActorContext{}, uuid.Nil, false
	}

	token, ok := parseUUIDParam(c, "token")
	if !ok {
		return commands.ActorContext{}, uuid.Nil, false
	}

	return actor, token, true
}

func (h *WizardHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Wizard session not found or expired",
		})
	case errors.Is(err, commands.ErrDraftForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Wizard session belongs to another user",
		})
	case errors.Is(err, commands.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, commands.ErrServiceInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Service is not bookable",
		})
	case errors.Is(err, booking.ErrWizardCompleted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Wizard already completed",
		})
	case errors.Is(err, booking.ErrStepLocked):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Details can only be changed on the first step",
		})
	case errors.Is(err, booking.ErrCannotGoBack):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Cannot go back from this step",
		})
	case errors.Is(err, booking.ErrBookingNotCreated):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking has not been created yet",
		})
	case errors.Is(err, commands.ErrPaymentFailed):
		// the draft is unchanged; the client may retry the same action
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment could not be processed. Please try again.",
		})
	case errors.Is(err, commands.ErrBookingSaveFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Booking could not be saved. Please try again.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
