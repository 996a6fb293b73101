package model

import (
	"errors"
	"fmt"
	"iter"

	"github.com/go-logr/logr"
)

// SolutionHandler receives every complete solution in search order. The solution stays owned by the packer and is only
// valid until the handler returns; Clone it to keep it. Returning false stops the search
type SolutionHandler func(solution *Solution) bool

type Packer interface {
	// Enumerates every exact packing of target that extends partial using units of bag, calling handler once per packing.
	// A nil partial stands for EmptySolution(). bag and partial are mutated during the search and restored before Solve returns.
	// Finding no packing is not an error: handler is simply never called
	Solve(target *Target, bag *Bag, partial *Solution, handler SolutionHandler) error
}

type Option func(options *options)

type options struct {
	logger logr.Logger
}

// WithLogger makes the packer report its progress at verbosity 1
func WithLogger(logger logr.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

func newOptions(opts []Option) options {
	options := options{logger: logr.Discard()}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// Solutions exposes the packer's enumeration as a sequence. Breaking out of the loop stops the search; an invalid
// input is yielded once as an error. Yielded solutions are clones and remain valid after the iteration
func Solutions(packer Packer, target *Target, bag *Bag, partial *Solution) iter.Seq2[*Solution, error] {
	return func(yield func(*Solution, error) bool) {
		err := packer.Solve(target, bag, partial, func(solution *Solution) bool {
			return yield(solution.Clone(), nil)
		})
		if err != nil {
			yield(nil, err)
		}
	}
}

// Collect returns clones of up to limit solutions, every solution when limit is not positive
func Collect(packer Packer, target *Target, bag *Bag, partial *Solution, limit int) ([]*Solution, error) {
	solutions := make([]*Solution, 0)
	err := packer.Solve(target, bag, partial, func(solution *Solution) bool {
		solutions = append(solutions, solution.Clone())
		return limit <= 0 || len(solutions) < limit
	})
	return solutions, err
}

// Count returns the number of solutions
func Count(packer Packer, target *Target, bag *Bag, partial *Solution) (int, error) {
	count := 0
	err := packer.Solve(target, bag, partial, func(*Solution) bool {
		count++
		return true
	})
	return count, err
}

// prepare validates the inputs of Solve and binds partial to target
func prepare(target *Target, bag *Bag, partial *Solution) (*Solution, error) {
	if target == nil {
		return nil, errors.New("target must not be nil")
	} else if bag == nil {
		return nil, errors.New("bag must not be nil")
	}

	if partial == nil {
		partial = EmptySolution()
	}
	if partial.target != target {
		if err := partial.Bind(target); err != nil {
			return nil, fmt.Errorf("invalid partial solution: %w", err)
		}
	}
	return partial, nil
}
