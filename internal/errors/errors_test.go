package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeError_Error(t *testing.T) {
	err := New(KindInvalidArgument, "bad input")
	assert.Equal(t, "[INVALID_ARGUMENT] bad input", err.Error())

	err.WithDetail("limit")
	assert.Equal(t, "[INVALID_ARGUMENT] bad input: limit", err.Error())
}

func TestCodeError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(KindIoError, "read file", cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestWrap_NilCauseReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(KindInternal, "unused", nil))
}

func TestCodeError_IsMatchesByKind(t *testing.T) {
	a := New(KindBackendTimeout, "slow backend")
	b := New(KindBackendTimeout, "different message")
	c := New(KindInternal, "different kind")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("missing query")
	assert.Equal(t, KindInvalidArgument, err.Kind)
}
