// Entry is the central data unit of the domain.
package core

// Page is the unit of display managed by the navigation engine. Pages are
// opaque to the core; implementations that want to observe navigation can
// additionally implement the observer interfaces in ports.go.
//
// Pages are matched by identity in the cache and the history stacks, so a
// page should be a pointer (or another comparable reference type).
type Page = any

// Mode identifies how a navigation entered the history and determines the
// stack-mutation policy once it commits.
type Mode int

const (
	// ModeNew navigates to a fresh occurrence of a page, clearing the
	// forward stack.
	ModeNew Mode = iota
	// ModeBack returns to the most recent back-stack entry.
	ModeBack
	// ModeForward re-advances to the most recent forward-stack entry.
	ModeForward
	// ModeRefresh re-displays the current page without stack mutation.
	ModeRefresh
)

func (m Mode) String() string {
	switch m {
	case ModeNew:
		return "new"
	case ModeBack:
		return "back"
	case ModeForward:
		return "forward"
	case ModeRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// Transition describes the animation the presentation layer should run when
// a page is displayed. The engine selects and forwards a transition; it
// never executes one.
type Transition string

const (
	// TransitionEntrance is the built-in default applied when neither the
	// entry nor the engine configuration carries an override.
	TransitionEntrance Transition = "entrance"
	// TransitionSuppress asks the presentation layer to skip animation.
	TransitionSuppress Transition = "suppress"
	// TransitionSlide slides the incoming page over the outgoing one.
	TransitionSlide Transition = "slide"
	// TransitionDrillIn zooms into the incoming page.
	TransitionDrillIn Transition = "drillin"
)

// Entry represents one navigated-to page occurrence. It lives in whichever
// container currently retains it: the current slot, the back stack or the
// forward stack.
type Entry struct {
	sourceType string
	// Parameter is the value handed to the destination page. Only text,
	// character, number and unique-identifier parameters survive
	// serialization; anything else is valid for in-memory navigation only.
	Parameter  any
	transition Transition
	page       Page
}

// NewEntry creates an entry for sourceType. The transition override may be
// empty, in which case the engine default applies at display time.
func NewEntry(sourceType string, parameter any, transition Transition) *Entry {
	return &Entry{sourceType: sourceType, Parameter: parameter, transition: transition}
}

// SourceType returns the registered page-type name. Immutable after
// construction.
func (e *Entry) SourceType() string { return e.sourceType }

// Transition returns the transition override, or empty when none was set.
func (e *Entry) Transition() Transition { return e.transition }

// Page returns the realized page instance, or nil when the entry has not
// been resolved yet.
func (e *Entry) Page() Page { return e.page }

// setPage attaches the realized instance. The instance is set exactly once;
// later calls are ignored so the entry stays stable.
func (e *Entry) setPage(p Page) {
	if e.page == nil {
		e.page = p
	}
}

// effectiveTransition resolves the transition to hand to the presenter:
// the entry's own override, then the engine default, then entrance.
func (e *Entry) effectiveTransition(engineDefault Transition) Transition {
	if e.transition != "" {
		return e.transition
	}
	if engineDefault != "" {
		return engineDefault
	}
	return TransitionEntrance
}
