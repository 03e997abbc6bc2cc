// Package errs defines the sentinel error values shared across the
// scheduler, comparator, attractor, verifier, and strange-loop packages.
//
// Every error below is a value, never a panic: callers compare with
// errors.Is and, where an error carries context, the context is wrapped
// with fmt.Errorf("%w: ...") at the call site rather than folded into the
// sentinel itself.
package errs

import "errors"

var (
	// ErrSequenceEmpty indicates an operand sequence is empty when the
	// requested algorithm requires both operands to be non-empty.
	ErrSequenceEmpty = errors.New("chronos: sequence is empty")

	// ErrSequenceTooLong indicates a sequence exceeds the comparator's
	// configured MaxSequenceLength.
	ErrSequenceTooLong = errors.New("chronos: sequence exceeds max length")

	// ErrDimensionMismatch indicates two sequences have incompatible
	// lengths or dimensionality for the requested comparison.
	ErrDimensionMismatch = errors.New("chronos: dimension mismatch")

	// ErrQueueFull indicates the scheduler's queue is at max_queue_size.
	ErrQueueFull = errors.New("chronos: scheduler queue is full")

	// ErrTaskFailed indicates a consumer-supplied callback faulted during
	// execute_task; the scheduler caught it and counted it.
	ErrTaskFailed = errors.New("chronos: task callback failed")

	// ErrInsufficientData indicates the attractor analyzer has fewer than
	// the minimum required trajectory points to run an analysis.
	ErrInsufficientData = errors.New("chronos: insufficient trajectory data")

	// ErrTimeoutExceeded indicates the verifier aborted because
	// max_solving_time_ms elapsed before evaluation completed.
	ErrTimeoutExceeded = errors.New("chronos: verification timeout exceeded")

	// ErrSafetyViolation indicates a proposed strange-loop modification
	// failed an enforced safety constraint and was rejected.
	ErrSafetyViolation = errors.New("chronos: safety constraint violated")

	// ErrInvalidFormula indicates a malformed or nil TemporalFormula was
	// passed to the verifier.
	ErrInvalidFormula = errors.New("chronos: invalid temporal formula")

	// ErrInvalidLevel indicates an out-of-range or negative meta level was
	// requested from the strange loop.
	ErrInvalidLevel = errors.New("chronos: invalid meta level")
)
