package tpcc

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInvalidItem is a sentinel error for NewOrder's business-level
// abort. NewOrder itself never returns it: the method reports the
// abort through the output's Status field (see Committed), and no
// code in this package currently returns it.
var ErrInvalidItem = errors.New("item number is not valid")

// InvalidItemStatus is the exact status string NewOrder writes on the
// prescribed 1% invalid-item abort.
const InvalidItemStatus = "Item number is not valid"

// preconditionLogger is set by Tables.New; it is nil only in tests
// that construct pieces of the core without going through New, in
// which case fatalf falls back to panic so the failure is still
// impossible to miss.
var preconditionLogger *zap.SugaredLogger

// SetPreconditionLogger installs the logger used to report precondition
// violations (corrupted load, duplicate primary key, missing parent
// row, out-of-range id -- see spec.md §7). These are fatal: a
// production build asserts, and this implementation mirrors that with
// a structured zap.Fatalw so the failure carries context instead of a
// bare panic.
func SetPreconditionLogger(l *zap.SugaredLogger) {
	preconditionLogger = l
}

func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if preconditionLogger != nil {
		preconditionLogger.Fatalw("precondition violation", "detail", msg)
		return
	}
	panic("tpcc: precondition violation: " + msg)
}

func mustInRange(name string, v, lo, hi int32) {
	if v < lo || v > hi {
		fatalf("%s out of range: %d not in [%d, %d]", name, v, lo, hi)
	}
}

func mustPositive(name string, v int32) {
	if v <= 0 {
		fatalf("%s must be positive, got %d", name, v)
	}
}

func mustPositive64(name string, v int64) {
	if v <= 0 {
		fatalf("%s must be positive, got %d", name, v)
	}
}
