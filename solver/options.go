package solver

import (
	"fmt"

	"github.com/katalvlaran/bnb/config"
	"github.com/katalvlaran/bnb/core"
	"github.com/katalvlaran/bnb/frontier"
	"github.com/katalvlaran/bnb/logging"
)

// Option configures Solve via functional arguments. An invalid Option is
// recorded and surfaced as core.ErrConfiguration when Solve is invoked.
type Option func(*Options)

// Options holds the parameters and hooks of one solve.
type Options struct {
	// Strategy is the exploration order.
	Strategy frontier.Strategy

	// MaxBranches caps the number of branch steps; Unbounded disables it.
	MaxBranches int

	// Logger receives run start/finish records and incumbent updates.
	Logger logging.Logger

	// OnVisit is called after every iteration. A non-nil error aborts the run.
	OnVisit func(v Visit) error

	// OnIncumbent is called whenever the incumbent is replaced.
	// A non-nil error aborts the run.
	OnIncumbent func(v Visit) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns best-first search, no branch budget, no logging and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Strategy:    frontier.BestFirst,
		MaxBranches: Unbounded,
		Logger:      logging.NewNoOp(),
		OnVisit:     func(Visit) error { return nil },
		OnIncumbent: func(Visit) error { return nil },
	}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{core.ErrConfiguration}, args...)...)
	}
}

// WithStrategy selects the exploration order. Unknown identifiers are
// rejected by Solve before any search work.
func WithStrategy(s frontier.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxBranches caps the number of branch steps. n = Unbounded (-1)
// disables the cap; n < -1 is invalid.
func WithMaxBranches(n int) Option {
	return func(o *Options) {
		if n < Unbounded {
			o.fail("max branches must be >= %d (got %d)", Unbounded, n)

			return
		}
		o.MaxBranches = n
	}
}

// WithLogger sets the logger. A nil logger is invalid.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.fail("nil logger")

			return
		}
		o.Logger = l
	}
}

// WithOnVisit installs a per-iteration hook. A nil fn is invalid.
func WithOnVisit(fn func(Visit) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.fail("nil OnVisit hook")

			return
		}
		o.OnVisit = fn
	}
}

// WithOnIncumbent installs an incumbent-replacement hook. A nil fn is invalid.
func WithOnIncumbent(fn func(Visit) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.fail("nil OnIncumbent hook")

			return
		}
		o.OnIncumbent = fn
	}
}

// WithSettings applies strategy, branch budget and logger from loaded settings.
func WithSettings(s config.Settings) Option {
	return func(o *Options) {
		if err := s.Validate(); err != nil {
			if o.err == nil {
				o.err = err
			}

			return
		}
		log, err := s.Logger()
		if err != nil {
			if o.err == nil {
				o.err = err
			}

			return
		}
		o.Strategy = frontier.Strategy(s.Strategy)
		o.MaxBranches = s.MaxBranches
		o.Logger = log
	}
}
