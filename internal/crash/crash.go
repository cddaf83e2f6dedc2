// Package crash implements the runtime's fail-fast policy for contract
// violations.
//
// A contract violation means the compiled code invoking the runtime is
// defective, not that the user's data is bad, so there is no error value
// to return: the violated check is logged with full detail and the
// runtime panics with an *Error. The runtime installs no recover
// handlers, so an unhandled violation terminates the process with the
// diagnostic and a stack trace.
package crash

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/farlang/far/internal/logging"
)

// Error is the panic value carried by every fatal diagnostic.
type Error struct {
	msg string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "fatal runtime error: " + e.msg
}

// Crash reports an unrecoverable runtime condition and never returns.
func Crash(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logging.Logger().Error("fatal runtime error", zap.String("detail", msg))
	panic(&Error{msg: msg})
}

// Check verifies a precondition established by the code generator.
// A false condition is a defect in the calling code and is fatal.
func Check(ok bool, format string, args ...any) {
	if !ok {
		Crash(format, args...)
	}
}

// NoCase reports a switch case that correctly generated code can never
// reach.
func NoCase(format string, args ...any) {
	Crash("no case: "+format, args...)
}
