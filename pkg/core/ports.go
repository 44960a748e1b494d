package core

// Factory produces page instances for registered source types. There is no
// reflection-based fallback: a type without a constructor is a resolution
// failure.
type Factory interface {
	// Create returns a new page for the given source type, or an error when
	// the type has no construction path.
	Create(sourceType string) (Page, error)
}

// Resolver is an optional Factory upgrade. State restore uses it to detect
// unresolvable type tokens without instantiating anything; factories that do
// not implement it are assumed to resolve every token.
type Resolver interface {
	Resolves(sourceType string) bool
}

// ObjectFactory resolves arbitrary target objects to pages for the
// navigate-from-object path.
type ObjectFactory interface {
	// PageFor returns the source type and page for target, or an error when
	// the target cannot be resolved.
	PageFor(target any) (sourceType string, page Page, err error)
}

// Presenter is the presentation sink. The engine hands it the page to show
// and the transition to run; it never waits for either.
type Presenter interface {
	Display(page Page, transition Transition)
	// Clear drops the displayed content (used by state restore).
	Clear()
}

// Scheduler defers work past the current call, modelling the post-layout
// dispatch of the transition invocation. The engine only enqueues; it never
// awaits completion.
type Scheduler interface {
	Schedule(fn func())
}

// NavigatingObserver is implemented by pages that want a veto before being
// navigated away from. Setting Cancel on the event stops the navigation
// before any state mutation.
type NavigatingObserver interface {
	OnNavigatingFrom(e *NavigatingEvent)
}

// NavigatedFromObserver is notified after its page stops being current.
type NavigatedFromObserver interface {
	OnNavigatedFrom(e NavigationEvent)
}

// NavigatedToObserver is notified after its page becomes current.
type NavigatedToObserver interface {
	OnNavigatedTo(e NavigationEvent)
}

// inlineScheduler runs scheduled work synchronously. Default when the host
// provides no dispatcher.
type inlineScheduler struct{}

func (inlineScheduler) Schedule(fn func()) { fn() }

// discardPresenter swallows display requests. Default for headless use.
type discardPresenter struct{}

func (discardPresenter) Display(Page, Transition) {}
func (discardPresenter) Clear()                   {}
