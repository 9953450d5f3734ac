package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "validation",
			err:    domain.Invalid(domain.ReasonSlotUnavailable, "time"),
			status: http.StatusUnprocessableEntity,
			code:   "slot_unavailable",
		},
		{
			name:   "wrapped conflict",
			err:    fmt.Errorf("commit: %w", &domain.BookingConflict{Reason: domain.ReasonAlreadyTaken}),
			status: http.StatusConflict,
			code:   "already_taken",
		},
		{
			name:   "invalid transition",
			err:    &domain.InvalidTransitionError{From: domain.StatusPending, To: domain.StatusCompleted},
			status: http.StatusConflict,
			code:   "invalid_transition",
		},
		{
			name:   "not found",
			err:    ErrBusiness(CodeAppointmentNotFound),
			status: http.StatusNotFound,
			code:   "appointment_not_found",
		},
		{
			name:   "plan limit",
			err:    ErrBusiness(CodePlanLimitReached),
			status: http.StatusConflict,
			code:   "plan_limit_reached",
		},
		{
			name:   "business rule",
			err:    fmt.Errorf("change plan: %w", ErrBusiness(CodeUnknownPlan)),
			status: http.StatusBadRequest,
			code:   "unknown_plan",
		},
		{
			name:   "unexpected",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
			code:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			FromError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)

			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestWrite_EchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Header("X-Request-ID", "req-42")

	BadRequest(c, "invalid_id", "ID inválido.")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "req-42", body.RequestID)
}
