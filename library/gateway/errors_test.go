package gateway_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/gateway"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

func Test_StatusOf(t *testing.T) {
	testCases := []struct {
		err  error
		want int
	}{
		{err: core.Violate(core.ErrInvalidArgument, "bad"), want: http.StatusBadRequest},
		{err: core.Violate(core.ErrNotFound, "missing"), want: http.StatusNotFound},
		{err: core.Violate(core.ErrConflict, "taken"), want: http.StatusConflict},
		{err: core.Violate(core.ErrInvalidState, "wrong state"), want: http.StatusConflict},
		{err: core.Violate(core.ErrUnavailable, "no copies"), want: http.StatusConflict},
		{err: fmt.Errorf("append: %w", eventstore.ErrConcurrencyConflict), want: http.StatusConflict},
		{err: core.Violate(core.ErrInvariantViolation, "bug"), want: http.StatusInternalServerError},
		{err: context.DeadlineExceeded, want: http.StatusServiceUnavailable},
		{err: echo.NewHTTPError(http.StatusForbidden, "nope"), want: http.StatusForbidden},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, gateway.StatusOf(tc.err))
		})
	}
}
