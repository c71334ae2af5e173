package api

import (
	"net/http"

	reqdto "tourism-api/internal/handler/dto/request"
	resdto "tourism-api/internal/handler/dto/response"
	"tourism-api/internal/handler/httperr"
	"tourism-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	cmds commands.RatingCommands
}

func NewRatingHandler(cmds commands.RatingCommands) *RatingHandler {
	return &RatingHandler{cmds: cmds}
}

// @Summary Rate a tour or restaurant
// @Description Each user may rate an entity once.
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRatingRequest true "Rating"
// @Success 201 {object} resdto.RatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /ratings [post]
func (h *RatingHandler) Create(c *gin.Context) {
	var req reqdto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Rate(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRatingResult(result))
}
