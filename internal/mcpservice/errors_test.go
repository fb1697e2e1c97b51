package mcpservice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	cserrors "github.com/aman-cerp/codesearch/internal/errors"
)

func TestMapError_InvalidArgument(t *testing.T) {
	err := mapError(cserrors.InvalidArgument("limit must be between 1 and 100"))
	var me *mcpError
	ok := errors.As(err, &me)
	assert.True(t, ok)
	assert.Equal(t, errCodeInvalidParams, me.Code)
}

func TestMapError_BackendTimeout(t *testing.T) {
	err := mapError(cserrors.New(cserrors.KindBackendTimeout, "resolver backend exceeded its time budget"))
	var me *mcpError
	errors.As(err, &me)
	assert.Equal(t, errCodeTimeout, me.Code)
}

func TestMapError_Nil(t *testing.T) {
	assert.Nil(t, mapError(nil))
}

func TestMapError_GenericError(t *testing.T) {
	err := mapError(errors.New("boom"))
	var me *mcpError
	errors.As(err, &me)
	assert.Equal(t, errCodeInternal, me.Code)
}
