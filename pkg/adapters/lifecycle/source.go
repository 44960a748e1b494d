// Package lifecycle bridges navigation outcome events to the generic
// lifecycle event infrastructure, so hosts that already supervise their
// components through it can observe navigation the same way.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/tobyv/pageflow/pkg/core"
)

type engineSource struct {
	events       <-chan core.Event
	out          chan lifecycle.Event
	failuresOnly bool
}

// SourceOption tunes the bridge.
type SourceOption func(*engineSource)

// FailuresOnly forwards only failed navigation outcomes, for hosts that
// treat navigation failures as component health signals.
func FailuresOnly() SourceOption {
	return func(s *engineSource) { s.failuresOnly = true }
}

// NewSource creates a lifecycle.Source that emits navigation outcomes.
// Feed it the channel returned by Engine.Events; the engine must be
// configured with an event buffer for that channel to exist.
func NewSource(events <-chan core.Event, opts ...SourceOption) lifecycle.Source {
	s := &engineSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *engineSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start launches the bridge goroutine. core.Event satisfies
// lifecycle.Event through its String method, so records pass through
// unwrapped.
func (s *engineSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if s.failuresOnly && e.Type != core.EventFailed {
					continue
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
