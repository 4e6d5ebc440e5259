//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/api"
	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/common/testutil"
	commandsmock "marketplace-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWizardCommands
	handler      *api.WizardHandler
	userID       uuid.UUID
}

func (s *WizardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWizardCommands(s.mockCtrl)
	s.handler = api.NewWizardHandler(s.mockCommands)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	wizard := s.router.Group("/api/bookings/wizard", authMiddleware)
	wizard.POST("", s.handler.Start)
	wizard.GET("/:token", s.handler.Get)
	wizard.PUT("/:token/details", s.handler.UpdateDetails)
	wizard.POST("/:token/next", s.handler.Next)
	wizard.POST("/:token/back", s.handler.Back)
}

func (s *WizardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardHandlerSuite(t *testing.T) {
	suite.Run(t, new(WizardHandlerTestSuite))
}

func (s *WizardHandlerTestSuite) draftResult(step booking.Step) *commands.WizardResult {
	draft := builder.NewDraftBuilder().WithStep(step).BuildDomain()
	draft.UserID = s.userID
	return &commands.WizardResult{Draft: draft}
}

func (s *WizardHandlerTestSuite) TestStart() {
	url := "/api/bookings/wizard"
	serviceID := uuid.New()
	body := testutil.DtoMap(s.T(), reqdto.StartWizardRequest{ServiceID: serviceID})

	s.Run("success: returns 201 with the new session", func() {
		result := s.draftResult(booking.StepDetails)
		s.mockCommands.EXPECT().Start(gomock.Any(), s.userID, gomock.Any()).
			Return(result, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var resp resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(result.Draft.Token, resp.Token)
		s.Equal(1, resp.Step)
		s.Equal("details", resp.StepName)
	})

	s.Run("missing serviceId is a 400", func() {
		incomplete := testutil.DtoMap(s.T(), reqdto.StartWizardRequest{ServiceID: serviceID}, testutil.Field("serviceId", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, incomplete, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unknown service is a 404", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrServiceNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Service not found")
	})

	s.Run("inactive service is a 422", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrServiceInactive).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Service is not bookable")
	})

	s.Run("unauthenticated is a 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *WizardHandlerTestSuite) TestGet() {
	token := uuid.New()

	s.Run("success: returns the session", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), s.userID, token).
			Return(s.draftResult(booking.StepPaymentType), nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/wizard/"+token.String(), nil, "token")

		var resp resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(2, resp.Step)
		s.True(resp.CanGoBack)
	})

	s.Run("malformed token is a 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/wizard/not-a-uuid", nil, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("expired session is a 404", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), s.userID, token).
			Return(nil, commands.ErrDraftNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/wizard/"+token.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found or expired")
	})

	s.Run("someone else's session is a 403", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), s.userID, token).
			Return(nil, commands.ErrDraftForbidden).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/wizard/"+token.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "another user")
	})
}

func (s *WizardHandlerTestSuite) TestUpdateDetails() {
	token := uuid.New()
	url := "/api/bookings/wizard/" + token.String() + "/details"
	body := testutil.DtoMap(s.T(), reqdto.UpdateDetailsRequest{},
		testutil.Field("scheduledDate", "2026-09-15"),
		testutil.Field("scheduledTime", "10:00"),
	)

	s.Run("success: returns the updated session", func() {
		s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), s.userID, token, gomock.Any()).
			Return(s.draftResult(booking.StepDetails), nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")

		var resp resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("editing past step one is a 409", func() {
		s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), s.userID, token, gomock.Any()).
			Return(nil, booking.ErrStepLocked).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "first step")
	})

	s.Run("completed wizard is a 409", func() {
		s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), s.userID, token, gomock.Any()).
			Return(nil, booking.ErrWizardCompleted).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already completed")
	})
}

func (s *WizardHandlerTestSuite) TestNext() {
	token := uuid.New()
	url := "/api/bookings/wizard/" + token.String() + "/next"

	s.Run("success: advances without a body", func() {
		s.mockCommands.EXPECT().Next(gomock.Any(), s.userID, token, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.draftResult(booking.StepPaymentType), nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var resp resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(2, resp.Step)
	})

	s.Run("guard failure returns the field errors as a 422", func() {
		blocked := &commands.WizardResult{
			FieldErrors: booking.FieldErrors{"scheduledDate": "pick a date", "customerName": "name is required"},
		}
		s.mockCommands.EXPECT().Next(gomock.Any(), s.userID, token, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(blocked, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertValidationResponse(s.T(), w, "scheduledDate", "customerName")
	})

	s.Run("declined payment is a 502", func() {
		s.mockCommands.EXPECT().Next(gomock.Any(), s.userID, token, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPaymentFailed).Times(1)

		body := testutil.DtoMap(s.T(), reqdto.NextStepRequest{},
			testutil.Field("cardNumber", "4242424242424242"),
			testutil.Field("cardholderName", "Jordan Smith"),
			testutil.Field("expiryDate", "12/28"),
			testutil.Field("cvv", "123"),
		)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "Payment could not be processed")
	})

	s.Run("a storage failure is a 500", func() {
		s.mockCommands.EXPECT().Next(gomock.Any(), s.userID, token, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingSaveFailed).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Booking could not be saved")
	})

	s.Run("paying before the booking exists is a 409", func() {
		s.mockCommands.EXPECT().Next(gomock.Any(), s.userID, token, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, booking.ErrBookingNotCreated).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not been created")
	})
}

func (s *WizardHandlerTestSuite) TestBack() {
	token := uuid.New()
	url := "/api/bookings/wizard/" + token.String() + "/back"

	s.Run("success: steps back", func() {
		s.mockCommands.EXPECT().Back(gomock.Any(), s.userID, token).
			Return(s.draftResult(booking.StepDetails), nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var resp resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(1, resp.Step)
	})

	s.Run("blocked navigation is a 409", func() {
		s.mockCommands.EXPECT().Back(gomock.Any(), s.userID, token).
			Return(nil, booking.ErrCannotGoBack).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Cannot go back")
	})
}
