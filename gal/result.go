// Package gal is the graphics abstraction layer: the opaque handle types,
// the Backend dispatch interface bound once at renderInit, the pipeline
// specification, and the vertex-attribute/format enums spec.md §4.3
// describes. Two backends (gal/vulkan, gal/opengl) satisfy Backend; a third
// (gal/noop) exists purely for tests.
package gal

import "fmt"

// Result is the fallible-API return code every handle-returning or
// otherwise-fallible GAL function uses, per spec.md §7.
type Result int

const (
	Success Result = iota
	Failure
	AlreadyCalled
	TimeOut
	MemAllocFailure
)

func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case AlreadyCalled:
		return "AlreadyCalled"
	case TimeOut:
		return "TimeOut"
	case MemAllocFailure:
		return "MemAllocFailure"
	default:
		return "Unknown"
	}
}

// resultError wraps a Result in an error so fallible GAL calls can use
// ordinary Go error propagation; Backend methods return it as a plain
// error and ResultOf recovers the Result code, per SPEC_FULL.md §A.2.
type resultError struct {
	result Result
	detail string
}

func (e *resultError) Error() string {
	if e.detail == "" {
		return e.result.String()
	}
	return fmt.Sprintf("%s: %s", e.result, e.detail)
}

// Is matches target when it is also an error built by Err with the same
// Result, e.g. errors.Is(err, gal.Err(gal.Failure, "")). A bare Result is
// not an error; use ResultOf to read the code.
func (e *resultError) Is(target error) bool {
	re, ok := target.(*resultError)
	return ok && re.result == e.result
}

// Err builds an error carrying result and a formatted detail message.
func Err(result Result, format string, args ...any) error {
	return &resultError{result: result, detail: fmt.Sprintf(format, args...)}
}

// ResultOf extracts the Result code from an error built by Err, defaulting
// to Failure for any other non-nil error and Success for nil.
func ResultOf(err error) Result {
	if err == nil {
		return Success
	}
	if re, ok := err.(*resultError); ok {
		return re.result
	}
	return Failure
}
