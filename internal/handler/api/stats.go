package api

import (
	"net/http"

	reqdto "tourism-api/internal/handler/dto/request"
	resdto "tourism-api/internal/handler/dto/response"
	"tourism-api/internal/handler/httperr"
	"tourism-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Restaurant dashboard
// @Description Monthly occupancy and reservation counts for the current year.
// @Tags stats
// @Produce json
// @Param ownerId path string true "Owner ID"
// @Param id path string true "Restaurant ID"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owners/{ownerId}/restaurants/{id}/dashboard [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	ownerID, ok := pathUUID(c, "ownerId")
	if !ok {
		return
	}
	restaurantID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	dash, err := h.q.OwnerDashboard(c.Request.Context(), ownerID, restaurantID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboard(dash))
}

// @Summary Owner restaurant ranking
// @Description The owner's restaurants by reservations this year.
// @Tags stats
// @Produce json
// @Param ownerId path string true "Owner ID"
// @Success 200 {array} queries.RestaurantReservationCount
// @Failure 400 {object} httperr.Response
// @Router /owners/{ownerId}/restaurants/ranking [get]
func (h *StatsHandler) Ranking(c *gin.Context) {
	ownerID, ok := pathUUID(c, "ownerId")
	if !ok {
		return
	}

	ranking, err := h.q.OwnerRanking(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}

// @Summary Guide tour statistics
// @Description Top five most and least reserved and filled tours of a guide.
// @Tags stats
// @Produce json
// @Param id path string true "Guide ID"
// @Param from query string false "RFC 3339 lower bound on tour start"
// @Param to query string false "RFC 3339 upper bound on tour start"
// @Success 200 {object} queries.GuideTourStats
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /guides/{id}/tour-stats [get]
func (h *StatsHandler) GuideTours(c *gin.Context) {
	guideID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var p reqdto.PeriodQuery
	if err := c.ShouldBindQuery(&p); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	stats, err := h.q.GuideTourStats(c.Request.Context(), guideID, p.From, p.To)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
