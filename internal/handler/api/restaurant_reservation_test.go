//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/handler"
	"tourism-api/internal/handler/api"
	reqdto "tourism-api/internal/handler/dto/request"
	resdto "tourism-api/internal/handler/dto/response"
	"tourism-api/internal/handler/middleware"
	"tourism-api/internal/pkg/errs"
	"tourism-api/internal/usecase/commands"
	"tourism-api/internal/usecase/queries"
	"tourism-api/tests/common/httptest"
	"tourism-api/tests/common/testutil"
	commandsmock "tourism-api/tests/mock/commands"
	queriesmock "tourism-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RestaurantReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRestaurantBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	loc          *time.Location
}

func (s *RestaurantReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	s.loc = time.FixedZone("CET", 3600)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRestaurantBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewRestaurantReservationHandler(s.mockCommands, s.mockQueries, s.loc)

	s.Require().NoError(handler.RegisterValidators())
	s.router.POST("/restaurants/:id/reservations", h.Book)
	s.router.GET("/restaurants/:id/reservations", h.ListByRestaurant)
	s.router.DELETE("/restaurant-reservations/:id", h.Cancel)
	s.router.GET("/users/:id/restaurant-reservations", h.ListByUser)
}

func (s *RestaurantReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRestaurantReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(RestaurantReservationHandlerTestSuite))
}

func (s *RestaurantReservationHandlerTestSuite) TestBook() {
	restaurantID := uuid.New()
	userID := uuid.New()
	valid := reqdto.BookRestaurantRequest{UserID: userID, Date: "2025-05-21", MealSlot: "dinner", NumberOfPeople: 6}
	day := time.Date(2025, 5, 21, 0, 0, 0, 0, s.loc)
	input := commands.BookRestaurantInput{
		RestaurantID: restaurantID, UserID: userID, Date: day, MealSlot: restaurant.Dinner, NumberOfPeople: 6,
	}

	testCases := []struct {
		name         string
		mutate       func(m map[string]any)
		setupMock    func()
		expectCode   int
		expectInBody string
	}{
		{
			name: "created",
			setupMock: func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), input).Return(&commands.RestaurantReservationResult{
					ID: uuid.New(), RestaurantID: restaurantID, UserID: userID, Date: day,
					MealSlot: restaurant.Dinner, NumberOfPeople: 6, Available: 4,
				}, nil)
			},
			expectCode: http.StatusCreated,
		},
		{
			name:   "local slot alias",
			mutate: testutil.Field("meal_slot", "vecera"),
			setupMock: func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), input).Return(&commands.RestaurantReservationResult{
					ID: uuid.New(), RestaurantID: restaurantID, UserID: userID, Date: day,
					MealSlot: restaurant.Dinner, NumberOfPeople: 6, Available: 4,
				}, nil)
			},
			expectCode: http.StatusCreated,
		},
		{
			name:         "unknown meal slot",
			mutate:       testutil.Field("meal_slot", "brunch"),
			setupMock:    func() {},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid request",
		},
		{
			name:         "malformed date",
			mutate:       testutil.Field("date", "21.05.2025"),
			setupMock:    func() {},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid request",
		},
		{
			name: "slot full",
			setupMock: func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), input).Return(nil, errs.CapacityExceeded(4))
			},
			expectCode:   http.StatusConflict,
			expectInBody: "only 4 places left",
		},
		{
			name: "date in the past",
			setupMock: func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), input).Return(nil, restaurant.ErrDateInPast)
			},
			expectCode:   http.StatusBadRequest,
			expectInBody: "past",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()
			body := testutil.DtoMap(s.T(), valid)
			if tc.mutate != nil {
				tc.mutate(body)
			}

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/restaurants/"+restaurantID.String()+"/reservations", body)

			if tc.expectInBody == "" {
				var res resdto.RestaurantReservationResponse
				httptest.AssertSuccessResponse(s.T(), w, tc.expectCode, &res)
				s.Equal("2025-05-21", res.Date)
				s.Equal("dinner", res.MealSlot)
				s.Equal(4, res.Available)
				return
			}
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
			if tc.expectCode == http.StatusConflict {
				httptest.AssertErrorDetail(s.T(), w, `{"remaining":4}`)
			}
		})
	}
}

func (s *RestaurantReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("window closed", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(errs.CancellationWindowClosed(4 * time.Hour))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/restaurant-reservations/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "at least 4h")
		httptest.AssertErrorDetail(s.T(), w, `{"min_lead":"4h"}`)
	})

	s.Run("no content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/restaurant-reservations/"+id.String(), nil)
		s.Equal(http.StatusNoContent, w.Code)
	})
}

func (s *RestaurantReservationHandlerTestSuite) TestListByRestaurant() {
	restaurantID := uuid.New()
	day := time.Date(2025, 5, 21, 0, 0, 0, 0, s.loc)
	views := []*queries.RestaurantReservationView{
		{ID: uuid.New(), RestaurantID: restaurantID, RestaurantName: "Fish & Zeleni", Date: day, MealSlot: "lunch", NumberOfPeople: 2},
	}

	s.Run("filtered by day", func() {
		s.mockQueries.EXPECT().ListRestaurantReservationsByRestaurant(gomock.Any(), restaurantID, &day, 0).Return(views, nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/"+restaurantID.String()+"/reservations?date=2025-05-21", nil)

		var items []resdto.RestaurantReservationListItem
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		s.Require().Len(items, 1)
		s.Equal("2025-05-21", items[0].Date)
		s.Equal("lunch", items[0].MealSlot)
	})

	s.Run("all days", func() {
		s.mockQueries.EXPECT().ListRestaurantReservationsByRestaurant(gomock.Any(), restaurantID, gomock.Nil(), 0).Return(nil, nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/"+restaurantID.String()+"/reservations", nil)
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq("[]", w.Body.String())
	})

	s.Run("bad date", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/"+restaurantID.String()+"/reservations?date=tomorrow", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid query")
	})
}

func (s *RestaurantReservationHandlerTestSuite) TestListByUser() {
	userID := uuid.New()
	s.mockQueries.EXPECT().ListRestaurantReservationsByUser(gomock.Any(), userID, 0).Return([]*queries.RestaurantReservationView{}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/restaurant-reservations", nil)
	s.Equal(http.StatusOK, w.Code)
}
