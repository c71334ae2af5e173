//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourism-api/internal/handler/httperr"
	"tourism-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		detail any
	}{
		{name: "not found", err: errs.NotFound("tour"), status: http.StatusNotFound},
		{name: "invalid", err: errs.Invalid("bad"), status: http.StatusBadRequest},
		{name: "exceeded", err: errs.CapacityExceeded(4), status: http.StatusConflict, detail: gin.H{"remaining": 4}},
		{name: "exhausted", err: errs.CapacityExhausted(), status: http.StatusConflict, detail: gin.H{"remaining": 0}},
		{name: "wrapped exceeded", err: errs.Wrap(errs.CapacityExceeded(2), "book"), status: http.StatusConflict, detail: gin.H{"remaining": 2}},
		{name: "already rated", err: errs.Mark(errs.New("dup"), errs.ErrAlreadyRated), status: http.StatusConflict},
		{name: "window closed", err: errs.CancellationWindowClosed(12 * time.Hour), status: http.StatusBadRequest, detail: gin.H{"min_lead": "12h"}},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, detail := httperr.Classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.detail, detail)
		})
	}
}

func TestAbortWithDomainError_RecordsPublicError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	cause := errs.Mark(errors.New("db down"), errs.ErrDatabaseOperationFailed)
	httperr.AbortWithDomainError(c, cause)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
	require.Len(t, c.Errors, 1)
	assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
	assert.True(t, errs.Is(c.Errors[0].Err, errs.ErrDatabaseOperationFailed))
	resp, ok := c.Errors[0].Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
}
