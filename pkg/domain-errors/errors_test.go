package derrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndNewf(t *testing.T) {
	err := New(CodeValidation, "tax_id is malformed")
	assert.Equal(t, "VALIDATION_ERROR: tax_id is malformed", err.Error())

	err = Newf(CodeInvalidTransition, "cannot transition from %s to %s", "applied", "active")
	assert.Equal(t, "INVALID_TRANSITION: cannot transition from applied to active", err.Error())
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeFetchFailed, "investor storage unavailable")

	assert.Contains(t, err.Error(), "FETCH_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestHasCode(t *testing.T) {
	err := New(CodeNotFound, "investor not found")
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(err, CodeValidation))

	// Survives wrapping by callers.
	wrapped := fmt.Errorf("handling request: %w", err)
	assert.True(t, HasCode(wrapped, CodeNotFound))

	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
	assert.False(t, HasCode(nil, CodeNotFound))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeValidation, CodeOf(New(CodeValidation, "bad input")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "bad input", MessageOf(New(CodeValidation, "bad input")))
	// Non-domain errors never leak internals.
	assert.Equal(t, "internal error", MessageOf(errors.New("dial tcp 10.0.0.1: timeout")))
}

func TestUnwrapChain(t *testing.T) {
	cause := errors.New("row not found")
	err := Wrap(cause, CodeNotFound, "document not found")

	var de *Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, CodeNotFound, de.Code)
	assert.Equal(t, cause, errors.Unwrap(de))
}
