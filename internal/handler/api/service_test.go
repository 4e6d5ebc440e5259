//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"marketplace-api/internal/handler/api"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/httptest"
	queriesmock "marketplace-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockQueries      *queriesmock.MockServiceQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.ServiceHandler
}

func (s *ServiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockServiceQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	// admin routes are not registered here, so the command side stays nil
	s.handler = api.NewServiceHandler(nil, s.mockQueries, s.mockAvailability)

	s.router.GET("/api/services", s.handler.List)
	s.router.GET("/api/services/:id", s.handler.Get)
	s.router.GET("/api/services/:id/availability", s.handler.Availability)
}

func (s *ServiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestServiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ServiceHandlerTestSuite))
}

func (s *ServiceHandlerTestSuite) TestList() {
	s.Run("success: passes filters through and returns the page", func() {
		categoryID := uuid.New()
		items := []*queries.ServiceListItem{
			{ID: uuid.New(), Name: "Deep Cleaning", PriceCents: 10000, Currency: "USD"},
		}
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.ServiceFilter{CategoryID: &categoryID, Search: "clean", Page: 2, Limit: 10}).
			Return(items, queries.Pagination{Total: 11, Page: 2, Limit: 10, TotalPages: 2}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/services?categoryId="+categoryID.String()+"&search=clean&page=2&limit=10", nil, "")

		var resp resdto.ListResponse[resdto.ServiceListItemResponse]
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp.Items, 1)
		s.Equal("Deep Cleaning", resp.Items[0].Name)
		s.Equal(int64(11), resp.Pagination.Total)
	})

	s.Run("storage failure is a 500", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, queries.Pagination{}, errors.New("db down")).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/services", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ServiceHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: returns the service", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(&queries.ServiceView{ID: id, Name: "Deep Cleaning"}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/services/"+id.String(), nil, "")

		var resp resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(id, resp.ID)
	})

	s.Run("unknown service is a 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errors.New("not found")).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/services/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Service not found")
	})

	s.Run("malformed id is a 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/services/nope", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *ServiceHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	url := "/api/services/" + id.String() + "/availability"

	s.Run("success: returns the open slots", func() {
		s.mockAvailability.EXPECT().SlotsFor(gomock.Any(), id, gomock.Any()).
			Return(&queries.AvailabilityView{ServiceID: id, Date: "2026-09-15", Slots: []string{"09:00", "10:00"}}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-09-15", nil, "")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal([]string{"09:00", "10:00"}, resp.Slots)
	})

	s.Run("missing date is a 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("malformed date is a 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=15-09-2026", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "YYYY-MM-DD")
	})
}
