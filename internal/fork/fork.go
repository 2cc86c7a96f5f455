// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

// Package fork implements the par2/par4 fork-join primitives of the
// parallel overlay (spec.md §5) on top of golang.org/x/sync/errgroup: a
// fixed set of child thunks is launched concurrently and the caller
// blocks until every sibling has finished. There is no cooperative I/O;
// the only cancellation is the Stopped latch, which the parallel
// mapUntil creates for each call.
package fork

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Two evaluates f and g concurrently and waits for both to complete.
func Two(f, g func()) {
	var eg errgroup.Group
	eg.Go(func() error { f(); return nil })
	eg.Go(func() error { g(); return nil })
	_ = eg.Wait()
}

// Four evaluates f, g, h, k concurrently (the four quadrant positions of
// a split4) and waits for all to complete.
func Four(f, g, h, k func()) {
	var eg errgroup.Group
	eg.Go(func() error { f(); return nil })
	eg.Go(func() error { g(); return nil })
	eg.Go(func() error { h(); return nil })
	eg.Go(func() error { k(); return nil })
	_ = eg.Wait()
}

// Stopped is a shared, concurrency-safe latch that the parallel mapUntil
// recursion consults instead of calling cond() directly from every
// goroutine: the first quadrant whose own cond() check trips calls Stop,
// and every sibling observes it via Context.Done at its next leaf.
type Stopped struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewStopped creates a fresh latch for one mapUntil invocation.
func NewStopped() *Stopped {
	ctx, cancel := context.WithCancel(context.Background())
	return &Stopped{ctx: ctx, cancel: cancel}
}

// Check reports whether Stop has been called by any goroutine sharing
// this latch.
func (s *Stopped) Check() bool {
	select {
	case <-s.ctx.Done():
		return true
	default:
		return false
	}
}

// Stop trips the latch; idempotent.
func (s *Stopped) Stop() { s.cancel() }
