package core

import "fmt"

// NavigatingEvent is delivered to the cancelable checkpoints that run before
// any state mutation. Handlers set Cancel to veto the navigation; the flag
// is inspected synchronously right after each handler returns.
type NavigatingEvent struct {
	Mode       Mode
	Transition Transition
	Parameter  any
	SourceType string
	Cancel     bool
}

// NavigationEvent describes a committed or stopped navigation. Payload
// fields describe the destination entry.
type NavigationEvent struct {
	Page       Page
	Mode       Mode
	Transition Transition
	Parameter  any
	SourceType string
}

// FailureEvent carries the error behind a failed navigation attempt and the
// source type that was being navigated to.
type FailureEvent struct {
	Err        error
	SourceType string
}

// EventType represents the outcome class of a navigation attempt.
type EventType string

const (
	EventNavigated EventType = "NAVIGATED"
	EventStopped   EventType = "STOPPED"
	EventFailed    EventType = "FAILED"
)

// Event is the record published on the engine's outcome channel.
type Event struct {
	Type       EventType
	SourceType string
	Mode       Mode
	Err        error
	Timestamp  int64 // Unix timestamp
}

// String renders the event for logs and for generic event consumers.
func (e Event) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Type, e.SourceType, e.Err)
	}
	return fmt.Sprintf("%s %s (%s)", e.Type, e.SourceType, e.Mode)
}
