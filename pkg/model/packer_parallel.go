package model

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type parallelPacker struct {
	workers int
	options options
}

// NewParallelPacker returns a packer that splits the search at its first open cell: every candidate placement for that
// cell becomes a branch explored by one of at most workers goroutines, on a private copy of bag and solution.
// Branch results are emitted in branch order, so the sequence of solutions is the same as NewBacktrackingPacker's.
// A non-positive workers uses GOMAXPROCS
func NewParallelPacker(workers int, opts ...Option) Packer {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &parallelPacker{workers: workers, options: newOptions(opts)}
}

// branch buffers the solutions found under one top-level candidate until it is its turn to be emitted
type branch struct {
	solutions []*Solution
	done      chan struct{}
}

func (packer *parallelPacker) Solve(target *Target, bag *Bag, partial *Solution, handler SolutionHandler) error {
	partial, err := prepare(target, bag, partial)
	if err != nil {
		return err
	}
	logger := packer.options.logger

	open := partial.firstOpen(0)
	if open < 0 {
		handler(partial)
		return nil
	}

	root := newSearch(target, bag, partial, nil)
	candidates := make([]candidate, 0)
	root.candidates(open, func(candidate candidate) bool {
		candidates = append(candidates, candidate)
		return true
	})
	logger.V(1).Info("search started", "cells", target.Size(), "branches", len(candidates), "workers", packer.workers)

	branches := make([]branch, len(candidates))
	for i := range branches {
		branches[i].done = make(chan struct{})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(packer.workers)

	// Go blocks while the pool is full, so branches are scheduled from their own goroutine
	scheduled := make(chan struct{})
	go func() {
		defer close(scheduled)
		for i, candidate := range candidates {
			group.Go(func() error {
				defer close(branches[i].done)
				if ctx.Err() != nil {
					return nil
				}

				search := newSearch(target, bag.Clone(), partial.Clone(), func(solution *Solution) bool {
					if ctx.Err() != nil {
						return false
					}
					branches[i].solutions = append(branches[i].solutions, solution.Clone())
					return true
				})
				search.stopped = func() bool { return ctx.Err() != nil }
				search.apply(candidate, func() bool {
					return search.descend(open + 1)
				})
				logger.V(1).Info("branch finished", "branch", i, "solutions", search.solutions, "nodes", search.nodes)
				return nil
			})
		}
	}()

	stopped := false
	emitted := 0
	for i := range branches {
		<-branches[i].done
		for _, solution := range branches[i].solutions {
			if stopped {
				break
			}
			emitted++
			if !handler(solution) {
				stopped = true
				cancel()
			}
		}
		branches[i].solutions = nil
	}

	<-scheduled
	err = group.Wait()
	logger.V(1).Info("search finished", "solutions", emitted, "exhausted", !stopped)
	return err
}
