package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneMatchesSentinel(t *testing.T) {
	err := Clone(ErrNotFound, "schedule not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "schedule not found", err.Error())
	assert.Equal(t, "resource not found", ErrNotFound.Message)
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	err := fmt.Errorf("mark attendance: %w", InvalidArgument("unknown status %q", "sick"))

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	appErr := FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, `unknown status "sick"`, appErr.Message)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	appErr := FromError(errors.New("boom"))

	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Nil(t, FromError(nil))
}
