package mcpservice

import (
	"errors"
	"fmt"

	cserrors "github.com/aman-cerp/codesearch/internal/errors"
)

// JSON-RPC error codes: the standard invalid-params and internal-error codes,
// plus two codes from the implementation-defined server-error range
// (-32000..-32099) for backend timeout and backend unavailability.
const (
	errCodeInvalidParams = -32602
	errCodeInternal      = -32603
	errCodeTimeout       = -32003
	errCodeUnavailable   = -32004
)

// mcpError is a minimal implementation of the MCP error envelope; the go-sdk
// itself expects a Go error from tool handlers and renders it as a tool
// result, so this exists for logging and message composition only.
type mcpError struct {
	Code    int
	Message string
}

func (e *mcpError) Error() string {
	return fmt.Sprintf("codesearch error %d: %s", e.Code, e.Message)
}

// mapError converts an internal *errors.CodeError into a protocol-facing
// message, falling back to a generic internal error for anything else.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var ce *cserrors.CodeError
	if errors.As(err, &ce) {
		switch ce.Kind {
		case cserrors.KindInvalidArgument:
			return &mcpError{Code: errCodeInvalidParams, Message: ce.Message}
		case cserrors.KindBackendTimeout:
			return &mcpError{Code: errCodeTimeout, Message: ce.Message}
		case cserrors.KindBackendUnavailable:
			return &mcpError{Code: errCodeUnavailable, Message: ce.Message}
		default:
			return &mcpError{Code: errCodeInternal, Message: ce.Message}
		}
	}
	return &mcpError{Code: errCodeInternal, Message: err.Error()}
}
