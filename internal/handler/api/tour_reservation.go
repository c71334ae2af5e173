package api

import (
	"net/http"

	reqdto "tourism-api/internal/handler/dto/request"
	resdto "tourism-api/internal/handler/dto/response"
	"tourism-api/internal/handler/httperr"
	"tourism-api/internal/usecase/commands"
	"tourism-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TourReservationHandler struct {
	cmds commands.TourBookingCommands
	q    queries.ReservationQueries
}

func NewTourReservationHandler(cmds commands.TourBookingCommands, q queries.ReservationQueries) *TourReservationHandler {
	return &TourReservationHandler{cmds: cmds, q: q}
}

// @Summary Book a tour
// @Description Books places on a published tour. A second booking by the same user is merged into the first.
// @Tags tour-reservations
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Param request body reqdto.BookTourRequest true "Booking request"
// @Success 201 {object} resdto.TourReservationResponse
// @Success 200 {object} resdto.TourReservationResponse "merged into an existing reservation"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tours/{id}/reservations [post]
func (h *TourReservationHandler) Book(c *gin.Context) {
	tourID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BookTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), req.ToInput(tourID))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Merged {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromTourReservationResult(result))
}

// @Summary Cancel a tour reservation
// @Tags tour-reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tour-reservations/{id} [delete]
func (h *TourReservationHandler) Cancel(c *gin.Context) {
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

// @Summary List a user's tour reservations
// @Tags tour-reservations
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {array} resdto.TourReservationListItem
// @Failure 400 {object} httperr.Response
// @Router /users/{id}/tour-reservations [get]
func (h *TourReservationHandler) ListByUser(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.ListTourReservationsByUser(c.Request.Context(), userID, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTourReservationViews(views))
}
