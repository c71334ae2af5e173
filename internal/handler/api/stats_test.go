//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"tourism-api/internal/handler/api"
	resdto "tourism-api/internal/handler/dto/response"
	"tourism-api/internal/handler/middleware"
	"tourism-api/internal/usecase/queries"
	"tourism-api/tests/common/httptest"
	queriesmock "tourism-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockStatsQueries
}

func (s *StatsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockStatsQueries(s.mockCtrl)
	h := api.NewStatsHandler(s.mockQueries)

	s.router.GET("/owners/:ownerId/restaurants/ranking", h.Ranking)
	s.router.GET("/owners/:ownerId/restaurants/:id/dashboard", h.Dashboard)
	s.router.GET("/guides/:id/tour-stats", h.GuideTours)
}

func (s *StatsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatsHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerTestSuite))
}

func (s *StatsHandlerTestSuite) TestDashboard() {
	owner, restaurantID := uuid.New(), uuid.New()

	s.Run("twelve months", func() {
		s.mockQueries.EXPECT().OwnerDashboard(gomock.Any(), owner, restaurantID).Return(&queries.RestaurantDashboard{
			RestaurantID:        restaurantID,
			Year:                2025,
			MonthlyOccupancy:    [12]float64{0, 0, 12.5},
			MonthlyReservations: [12]int{0, 0, 3},
			TotalReservations:   3,
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owners/"+owner.String()+"/restaurants/"+restaurantID.String()+"/dashboard", nil)
		var res resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Require().Len(res.Months, 12)
		s.Equal(3, res.Months[2].Month)
		s.Equal(12.5, res.Months[2].Occupancy)
		s.Equal(3, res.TotalReservations)
	})

	s.Run("not the owner", func() {
		s.mockQueries.EXPECT().OwnerDashboard(gomock.Any(), owner, restaurantID).Return(nil, queries.ErrRestaurantNotOwned)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owners/"+owner.String()+"/restaurants/"+restaurantID.String()+"/dashboard", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")
	})
}

func (s *StatsHandlerTestSuite) TestRanking() {
	owner := uuid.New()
	s.mockQueries.EXPECT().OwnerRanking(gomock.Any(), owner).Return([]queries.RestaurantReservationCount{
		{RestaurantID: uuid.New(), RestaurantName: "A", Reservations: 9},
	}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owners/"+owner.String()+"/restaurants/ranking", nil)
	var res []queries.RestaurantReservationCount
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	s.Require().Len(res, 1)
	s.Equal(9, res[0].Reservations)
}

func (s *StatsHandlerTestSuite) TestGuideTours() {
	guide := uuid.New()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Run("with period", func() {
		s.mockQueries.EXPECT().GuideTourStats(gomock.Any(), guide, gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ any, _ uuid.UUID, gotFrom, _ *time.Time) (*queries.GuideTourStats, error) {
				s.Require().NotNil(gotFrom)
				s.True(from.Equal(*gotFrom))
				return &queries.GuideTourStats{GuideID: guide}, nil
			})
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guides/"+guide.String()+"/tour-stats?from=2025-01-01T00:00:00Z", nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("inverted period", func() {
		s.mockQueries.EXPECT().GuideTourStats(gomock.Any(), guide, gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidPeriod)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/guides/"+guide.String()+"/tour-stats?from=2025-06-01T00:00:00Z&to=2025-01-01T00:00:00Z", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "period")
	})

	s.Run("bad timestamp", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guides/"+guide.String()+"/tour-stats?from=yesterday", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid period")
	})
}
