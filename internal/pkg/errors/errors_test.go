package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-planner/internal/pkg/errors"
)

func TestAppError_WithDetails(t *testing.T) {
	withDetails := errors.ErrStationNotFound.WithDetails(map[string]interface{}{"station": "Avron"})

	assert.Nil(t, errors.ErrStationNotFound.Details)
	assert.Equal(t, "Avron", withDetails.Details["station"])
	assert.Equal(t, http.StatusNotFound, withDetails.StatusCode)
	assert.ErrorIs(t, withDetails, errors.ErrStationNotFound)
	assert.NotErrorIs(t, withDetails, errors.ErrLineNotFound)
}

func TestAppError_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: get: %w", errors.ErrCacheError, stderrors.New("connection refused"))

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "CACHE_ERROR", appErr.Code)
	assert.ErrorIs(t, err, errors.ErrCacheError)
	assert.Equal(t, "INTERNAL_SERVER_ERROR: Internal server error", errors.ErrInternalServer.Error())
}
