package sweep

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/alterdisks/disk"
)

// Sentinel errors for sweep execution.
var (
	// ErrNilRow is returned when the input row pointer is nil.
	ErrNilRow = errors.New("sweep: row is nil")

	// ErrNotAlternating is returned when the input row is not in
	// alternating form. This is a caller contract breach: no sweep runs.
	ErrNotAlternating = errors.New("sweep: input row is not alternating")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sweep: invalid option supplied")

	// ErrPassLimit is returned when MaxPasses outer iterations ran and the
	// row is still unsorted.
	ErrPassLimit = errors.New("sweep: pass limit reached before row was sorted")
)

// Direction is the scan direction of a single pass.
type Direction int

const (
	// Forward scans i = 0..n-2, comparing i with i+1.
	Forward Direction = iota

	// Backward scans i = n-1..1, comparing i-1 with i.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Option configures a sweep via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a sweep.
type Options struct {
	// OnSwap is called after every swap with the left index of the pair.
	OnSwap func(left int, dir Direction)

	// OnPass is called after every directional pass with the 1-based
	// outer iteration number and the swaps made by that pass.
	OnPass func(pass int, dir Direction, swaps int)

	// MaxPasses, if > 0, bounds the number of outer iterations.
	// 0 means unlimited.
	MaxPasses int

	// Logger receives Debug-level pass summaries. Never nil after
	// DefaultOptions.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks, no pass limit and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		OnSwap:    func(int, Direction) {},
		OnPass:    func(int, Direction, int) {},
		MaxPasses: 0,
		Logger:    zap.NewNop(),
	}
}

// WithOnSwap registers a callback run after every swap.
func WithOnSwap(fn func(left int, dir Direction)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// WithOnPass registers a callback run after every directional pass.
func WithOnPass(fn func(pass int, dir Direction, swaps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// WithMaxPasses bounds the outer iterations.
//
//	n > 0: stop with ErrPassLimit after n iterations
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPasses cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPasses = n
	}
}

// WithLogger sets the logger for pass summaries. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a sweep: the sorted row, the number of swaps
// and the number of outer iterations. The sweep never touches a Result
// after returning it, and the row is only reachable as a copy.
type Result struct {
	after *disk.Row

	// Swaps is the total number of adjacent swaps performed.
	Swaps int

	// Passes is the number of outer iterations. Zero when the input was
	// already sorted.
	Passes int
}

// After returns a copy of the final row, or nil for a zero Result.
func (r *Result) After() *disk.Row {
	if r.after == nil {
		return nil
	}

	return r.after.Clone()
}
