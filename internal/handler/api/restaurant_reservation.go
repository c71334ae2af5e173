package api

import (
	"net/http"
	"time"

	reqdto "tourism-api/internal/handler/dto/request"
	resdto "tourism-api/internal/handler/dto/response"
	"tourism-api/internal/handler/httperr"
	"tourism-api/internal/usecase/commands"
	"tourism-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RestaurantReservationHandler struct {
	cmds commands.RestaurantBookingCommands
	q    queries.ReservationQueries
	loc  *time.Location
}

func NewRestaurantReservationHandler(cmds commands.RestaurantBookingCommands, q queries.ReservationQueries, loc *time.Location) *RestaurantReservationHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &RestaurantReservationHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Book a restaurant table
// @Description Books seats for one meal slot of one day.
// @Tags restaurant-reservations
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.BookRestaurantRequest true "Booking request"
// @Success 201 {object} resdto.RestaurantReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /restaurants/{id}/reservations [post]
func (h *RestaurantReservationHandler) Book(c *gin.Context) {
	restaurantID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BookRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput(restaurantID, h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRestaurantReservationResult(result))
}

// @Summary Cancel a restaurant reservation
// @Description Breakfast must be cancelled at least 12h ahead, lunch and dinner 4h.
// @Tags restaurant-reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurant-reservations/{id} [delete]
func (h *RestaurantReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List a restaurant's reservations
// @Tags restaurant-reservations
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param date query string false "Calendar day (YYYY-MM-DD)"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {array} resdto.RestaurantReservationListItem
// @Failure 400 {object} httperr.Response
// @Router /restaurants/{id}/reservations [get]
func (h *RestaurantReservationHandler) ListByRestaurant(c *gin.Context) {
	restaurantID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var q reqdto.RestaurantDayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	day, err := q.Day(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	views, err := h.q.ListRestaurantReservationsByRestaurant(c.Request.Context(), restaurantID, day, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantReservationViews(views))
}

// @Summary List a user's restaurant reservations
// @Tags restaurant-reservations
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {array} resdto.RestaurantReservationListItem
// @Failure 400 {object} httperr.Response
// @Router /users/{id}/restaurant-reservations [get]
func (h *RestaurantReservationHandler) ListByUser(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.ListRestaurantReservationsByUser(c.Request.Context(), userID, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantReservationViews(views))
}
