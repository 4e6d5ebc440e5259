//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/api"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/common/testutil"
	commandsmock "marketplace-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProviderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	handler      *api.ProviderHandler
	adminID      uuid.UUID
	companyID    uuid.UUID
}

func (s *ProviderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	// public read routes are not registered here, so the query side stays nil
	s.handler = api.NewProviderHandler(s.mockCommands, nil)
	s.adminID = uuid.New()
	s.companyID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.adminID)
		c.Set("user_role", user.RoleAdmin)
		c.Set("company_id", s.companyID)
		c.Next()
	}

	providers := s.router.Group("/api/providers", authMiddleware)
	providers.POST("", s.handler.Create)
	providers.PUT("/:id", s.handler.Update)
	providers.DELETE("/:id", s.handler.Delete)
}

func (s *ProviderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProviderHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProviderHandlerTestSuite))
}

func (s *ProviderHandlerTestSuite) TestCreate() {
	url := "/api/providers"
	req := reqdto.CreateProviderRequest{
		UserID:      uuid.New(),
		DisplayName: "Shine Home Cleaning",
		OpenMin:     540,
		CloseMin:    1020,
	}

	s.Run("success: returns 201 with the new id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateProvider(gomock.Any(), gomock.Any(), req).
			Return(id, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), req), "token")

		var resp map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(id.String(), resp["id"])
	})

	s.Run("missing displayName is a 400", func() {
		body := testutil.DtoMap(s.T(), req, testutil.Field("displayName", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ProviderHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/providers/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().DeleteProvider(gomock.Any(), gomock.Any(), id).
			Return(nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("unknown provider is a 404", func() {
		s.mockCommands.EXPECT().DeleteProvider(gomock.Any(), gomock.Any(), id).
			Return(commands.ErrCatalogNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Resource not found")
	})

	s.Run("actor without a company is a 403", func() {
		s.mockCommands.EXPECT().DeleteProvider(gomock.Any(), gomock.Any(), id).
			Return(commands.ErrCompanyRequired).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("malformed id is a 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/providers/not-a-uuid", nil, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}
