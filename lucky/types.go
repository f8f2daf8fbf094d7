// Package lucky provides tunable options, pass records and error definitions
// for the lucky-number sieve.
package lucky

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for sieve execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lucky: invalid option supplied")

	// ErrTypeOverflow is returned when n exceeds the largest value the
	// element type can hold, so 1..n cannot be represented.
	ErrTypeOverflow = errors.New("lucky: n exceeds element type range")
)

// Pass describes one elimination pass of the sieve.
type Pass struct {
	// Index is the 1-based pass number.
	Index int

	// Step is the stride used: every Step-th survivor was removed.
	Step int

	// Removed is the number of values eliminated in this pass.
	Removed int

	// Remaining is the survivor count after the pass.
	Remaining int
}

// Option configures the sieve via functional arguments.
// An invalid Option (nil context, nil logger) is recorded and surfaced as
// ErrOptionViolation when the sieve runs.
type Option func(*Options)

// Options holds parameters and callbacks for Numbers and Partition.
type Options struct {
	// Ctx allows cancellation between passes.
	Ctx context.Context

	// Logger receives one debug entry per pass.
	Logger *zap.Logger

	// OnPass is called after each pass with its summary.
	OnPass func(Pass)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op logger
//   - a no-op OnPass hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
		OnPass: func(Pass) {},
	}
}

// WithContext sets a context checked before every pass.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Ctx = ctx
	}
}

// WithLogger routes per-pass debug entries to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Logger = logger
	}
}

// WithOnPass registers a hook invoked after each pass. nil keeps the no-op.
func WithOnPass(fn func(Pass)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
