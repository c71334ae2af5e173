package httperr

import (
	"net/http"

	"tourism-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps a coordinator outcome to its status code.
func AbortWithDomainError(c *gin.Context, err error) {
	status, detail := Classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, any) {
	if remaining, ok := errs.RemainingCapacity(err); ok {
		return http.StatusConflict, gin.H{"remaining": remaining}
	}
	if threshold, ok := errs.CancellationThreshold(err); ok {
		return http.StatusBadRequest, gin.H{"min_lead": errs.FormatLead(threshold)}
	}
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, nil
	case errs.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest, nil
	case errs.Is(err, errs.ErrAlreadyRated):
		return http.StatusConflict, nil
	default:
		return http.StatusInternalServerError, nil
	}
}
