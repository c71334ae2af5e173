//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

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

type TourReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTourBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
}

func (s *TourReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTourBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewTourReservationHandler(s.mockCommands, s.mockQueries)

	s.Require().NoError(handler.RegisterValidators())
	s.router.POST("/tours/:id/reservations", h.Book)
	s.router.DELETE("/tour-reservations/:id", h.Cancel)
	s.router.GET("/users/:id/tour-reservations", h.ListByUser)
}

func (s *TourReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTourReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(TourReservationHandlerTestSuite))
}

func (s *TourReservationHandlerTestSuite) TestBook() {
	tourID := uuid.New()
	userID := uuid.New()
	valid := reqdto.BookTourRequest{UserID: userID, GuestsCount: 3}
	input := commands.BookTourInput{TourID: tourID, UserID: userID, GuestsCount: 3}

	testCases := []struct {
		name         string
		path         string
		mutate       func(m map[string]any)
		setupMock    func()
		expectCode   int
		expectInBody string
	}{
		{
			name: "created",
			setupMock: func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), input).
					Return(&commands.TourReservationResult{ID: uuid.New(), TourID: tourID, UserID: userID, GuestsCount: 3}, nil)
			},
			expectCode: http.StatusCreated,
		},
		{
			name: "merged into existing reservation",
			setupMock: func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), input).
					Return(&commands.TourReservationResult{ID: uuid.New(), TourID: tourID, UserID: userID, GuestsCount: 6, Merged: true}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:         "invalid tour id",
			path:         "/tours/not-a-uuid/reservations",
			setupMock:    func() {},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid id",
		},
		{
			name:         "missing user",
			mutate:       testutil.Field("user_id", nil),
			setupMock:    func() {},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid request",
		},
		{
			name: "capacity exceeded",
			setupMock: func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), input).Return(nil, errs.CapacityExceeded(2))
			},
			expectCode:   http.StatusConflict,
			expectInBody: "only 2 places left",
		},
		{
			name: "capacity exhausted",
			setupMock: func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), input).Return(nil, errs.CapacityExhausted())
			},
			expectCode:   http.StatusConflict,
			expectInBody: "no places left",
		},
		{
			name: "tour not found",
			setupMock: func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), input).Return(nil, commands.ErrTourNotFound)
			},
			expectCode:   http.StatusNotFound,
			expectInBody: "tour not found",
		},
		{
			name: "storage failure",
			setupMock: func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), input).Return(nil, errors.New("connection reset"))
			},
			expectCode:   http.StatusInternalServerError,
			expectInBody: "Internal server error",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()
			path := tc.path
			if path == "" {
				path = "/tours/" + tourID.String() + "/reservations"
			}
			body := testutil.DtoMap(s.T(), valid)
			if tc.mutate != nil {
				tc.mutate(body)
			}

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, body)

			if tc.expectInBody == "" {
				var res resdto.TourReservationResponse
				httptest.AssertSuccessResponse(s.T(), w, tc.expectCode, &res)
				s.Equal(tourID, res.TourID)
				return
			}
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
		})
	}
}

func (s *TourReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("no content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/tour-reservations/"+id.String(), nil)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(commands.ErrTourReservationNotFound)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/tour-reservations/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "tour reservation not found")
	})
}

func (s *TourReservationHandlerTestSuite) TestListByUser() {
	userID := uuid.New()
	startsAt := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	views := []*queries.TourReservationView{
		{ID: uuid.New(), TourID: uuid.New(), TourName: "Fortress Walk", TourStartsAt: &startsAt, UserID: userID, GuestsCount: 2},
	}

	s.Run("ok with limit", func() {
		s.mockQueries.EXPECT().ListTourReservationsByUser(gomock.Any(), userID, 10).Return(views, nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/tour-reservations?limit=10", nil)

		var items []resdto.TourReservationListItem
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		s.Require().Len(items, 1)
		s.Equal("Fortress Walk", items[0].TourName)
		s.Equal(2, items[0].GuestsCount)
	})

	s.Run("limit out of range", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/tour-reservations?limit=500", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid query")
	})
}
