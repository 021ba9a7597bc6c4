package validator

import (
	"fmt"

	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// Error is the structured failure every validator entry point returns,
// carrying the status kind §7 classifies callers by.
type Error struct {
	Status types.Status
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

func newErr(status types.Status, format string, args ...any) *Error {
	return &Error{Status: status, Msg: fmt.Sprintf(format, args...)}
}

// NewError builds an Error for callers outside this package, such as
// the extra domain hooks layered on top of pre_create/pre_set (§4.5).
func NewError(status types.Status, format string, args ...any) *Error {
	return newErr(status, format, args...)
}

// fatalf panics to signal an internal invariant violation (§7): a ref
// count going negative, a registry entry missing for a known
// attribute, or similar code bugs rather than bad input. These are
// never converted into a returned Error.
func fatalf(format string, args ...any) {
	panic(fmt.Sprintf("validator: internal invariant violation: "+format, args...))
}
