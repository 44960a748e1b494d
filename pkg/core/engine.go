// Package core implements single-pane page navigation: resolving navigation
// requests to page instances, recycling instances through a bounded cache,
// maintaining back/forward history, and serializing the whole history to a
// compact text format.
//
// The engine assumes a single logical caller (the thread owning the pane)
// and performs no internal locking. One navigation completes before another
// starts; the presentation layer and page construction are ports.
package core

import (
	"fmt"
	"log/slog"
	"time"
)

// Config configures a navigation Engine. Factory, Presenter and Scheduler
// default to an empty registry, a discarding sink and inline execution.
type Config struct {
	Factory           Factory
	Objects           ObjectFactory
	Presenter         Presenter
	Scheduler         Scheduler
	Logger            *slog.Logger
	CacheSize         int
	NavigationStack   bool
	DefaultTransition Transition
	EventBuffer       int
}

// Engine orchestrates navigations for a single pane. All methods must be
// called from the same logical thread.
type Engine struct {
	factory   Factory
	objects   ObjectFactory
	presenter Presenter
	scheduler Scheduler
	logger    *slog.Logger

	cache   *PageCache
	history *History

	defaultTransition Transition
	stackEnabled      bool
	// navigating distinguishes engine-driven property updates from external
	// requests while a navigation is in flight. It is not a concurrency
	// primitive.
	navigating        bool
	currentSourceType string

	onNavigating []func(*NavigatingEvent)
	onNavigated  []func(NavigationEvent)
	onStopped    []func(NavigationEvent)
	onFailed     []func(FailureEvent)

	events chan Event
}

// NewEngine creates an engine from cfg.
func NewEngine(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	factory := cfg.Factory
	if factory == nil {
		factory = NewRegistry()
	}
	presenter := cfg.Presenter
	if presenter == nil {
		presenter = discardPresenter{}
	}
	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = inlineScheduler{}
	}
	size := cfg.CacheSize
	if size < 0 {
		size = 0
	}
	var events chan Event
	if cfg.EventBuffer > 0 {
		events = make(chan Event, cfg.EventBuffer)
	}
	return &Engine{
		factory:           factory,
		objects:           cfg.Objects,
		presenter:         presenter,
		scheduler:         scheduler,
		logger:            logger,
		cache:             NewPageCache(size),
		history:           NewHistory(size),
		defaultTransition: cfg.DefaultTransition,
		stackEnabled:      cfg.NavigationStack,
		events:            events,
	}
}

// HistoryBehavior controls whether a single navigation is recorded in the
// back/forward stacks.
type HistoryBehavior int

const (
	// HistoryDefault follows the engine's navigation-stack setting.
	HistoryDefault HistoryBehavior = iota
	// HistoryEnabled records this navigation regardless of the setting.
	HistoryEnabled
	// HistoryDisabled keeps this navigation out of the stacks.
	HistoryDisabled
)

// Options tune a single navigation request.
type Options struct {
	// Transition overrides the transition for this navigation; empty keeps
	// the entry/engine default.
	Transition Transition
	History    HistoryBehavior
}

// --- Notification registration ---

// OnNavigating registers a handler consulted before any state mutation.
// Setting Cancel on the event stops the navigation.
func (e *Engine) OnNavigating(fn func(*NavigatingEvent)) {
	e.onNavigating = append(e.onNavigating, fn)
}

// OnNavigated registers a handler for committed navigations.
func (e *Engine) OnNavigated(fn func(NavigationEvent)) {
	e.onNavigated = append(e.onNavigated, fn)
}

// OnNavigationStopped registers a handler for vetoed navigations.
func (e *Engine) OnNavigationStopped(fn func(NavigationEvent)) {
	e.onStopped = append(e.onStopped, fn)
}

// OnNavigationFailed registers a handler for failed navigation attempts.
// Failures are recoverable: the engine reports them here and returns false,
// it never propagates the error.
func (e *Engine) OnNavigationFailed(fn func(FailureEvent)) {
	e.onFailed = append(e.onFailed, fn)
}

// Events returns the outcome channel, or nil when no event buffer was
// configured. Records are dropped rather than ever blocking the navigation
// thread.
func (e *Engine) Events() <-chan Event { return e.events }

// --- Accessors ---

// CanGoBack reports whether the back stack holds at least one entry.
func (e *Engine) CanGoBack() bool { return e.history.CanGoBack() }

// CanGoForward reports whether the forward stack holds at least one entry.
func (e *Engine) CanGoForward() bool { return e.history.CanGoForward() }

// Current returns the entry presently displayed, if any.
func (e *Engine) Current() *Entry { return e.history.Current() }

// BackEntries returns a copy of the back stack, oldest first.
func (e *Engine) BackEntries() []*Entry { return e.history.BackEntries() }

// ForwardEntries returns a copy of the forward stack, most recent first.
func (e *Engine) ForwardEntries() []*Entry { return e.history.ForwardEntries() }

// CurrentSourceType returns the type of the page currently displayed, or
// empty when nothing has been shown.
func (e *Engine) CurrentSourceType() string { return e.currentSourceType }

// NavigationStackEnabled reports whether history recording is on.
func (e *Engine) NavigationStackEnabled() bool { return e.stackEnabled }

// SetNavigationStackEnabled toggles history recording. Turning it off
// clears the history stacks and the page cache wholesale.
func (e *Engine) SetNavigationStackEnabled(enabled bool) {
	e.stackEnabled = enabled
	if !enabled {
		e.history.Clear()
		e.cache.Clear()
	}
}

// SetCurrentSourceType navigates to sourceType when set externally. Updates
// observed while a navigation is in flight originate from the engine itself
// and only synchronize the property.
func (e *Engine) SetCurrentSourceType(sourceType string) bool {
	if e.navigating {
		e.currentSourceType = sourceType
		return true
	}
	return e.Navigate(sourceType, nil)
}

// --- Navigation requests ---

// Navigate requests a new navigation to sourceType. It reports whether the
// navigation committed.
func (e *Engine) Navigate(sourceType string, parameter any) bool {
	return e.NavigateWithOptions(sourceType, parameter, Options{})
}

// NavigateWithOptions requests a new navigation with per-request options.
func (e *Engine) NavigateWithOptions(sourceType string, parameter any, opts Options) bool {
	entry := NewEntry(sourceType, parameter, opts.Transition)
	return e.navigateCore(entry, ModeNew, opts.History, "")
}

// NavigateToObject resolves target to a page, first against the cache by
// type or identity, then through the configured object factory, and
// navigates to it. It returns false when no object factory is configured or
// the target cannot be resolved.
func (e *Engine) NavigateToObject(target any, opts *Options) bool {
	var o Options
	if opts != nil {
		o = *opts
	}
	sourceType, _ := target.(string)
	page, matched, ok := e.cache.Lookup(sourceType, target)
	if !ok {
		if e.objects == nil {
			e.fail(ErrNoObjectFactory, "")
			return false
		}
		var err error
		matched, page, err = e.objects.PageFor(target)
		if err != nil {
			e.fail(fmt.Errorf("resolve target: %w", err), matched)
			return false
		}
	}
	entry := NewEntry(matched, nil, o.Transition)
	entry.setPage(page)
	return e.navigateCore(entry, ModeNew, o.History, "")
}

// GoBack navigates to the most recent back-stack entry. No-op when the back
// stack is empty.
func (e *Engine) GoBack() bool { return e.goBack("") }

// GoBackWithTransition overrides the transition for this back navigation.
func (e *Engine) GoBackWithTransition(t Transition) bool { return e.goBack(t) }

func (e *Engine) goBack(t Transition) bool {
	if !e.history.CanGoBack() {
		return false
	}
	return e.navigateCore(e.history.PeekBack(), ModeBack, HistoryDefault, t)
}

// GoForward navigates to the most recent forward-stack entry. No-op when
// the forward stack is empty.
func (e *Engine) GoForward() bool {
	if !e.history.CanGoForward() {
		return false
	}
	return e.navigateCore(e.history.PeekForward(), ModeForward, HistoryDefault, "")
}

// Refresh re-runs the navigation pipeline for the current entry without
// mutating either stack. No-op when nothing is displayed.
func (e *Engine) Refresh() bool {
	cur := e.history.Current()
	if cur == nil {
		return false
	}
	return e.navigateCore(cur, ModeRefresh, HistoryDefault, "")
}

// navigateCore is the single-pass navigation state machine. Every error and
// every panic inside the attempt is converted to a NavigationFailed
// notification and a false return; nothing propagates to the caller. The
// in-flight guard is always cleared on exit.
func (e *Engine) navigateCore(entry *Entry, mode Mode, behavior HistoryBehavior, override Transition) (ok bool) {
	if e.navigating {
		e.logger.Warn("navigation rejected, another navigation is in progress",
			"sourceType", entry.SourceType())
		return false
	}
	e.navigating = true
	defer func() { e.navigating = false }()
	defer func() {
		if r := recover(); r != nil {
			e.fail(fmt.Errorf("navigation panic: %v", r), entry.SourceType())
			ok = false
		}
	}()

	shown := override
	if shown == "" {
		shown = entry.effectiveTransition(e.defaultTransition)
	}

	// Cancelable checkpoint: engine subscribers.
	ev := &NavigatingEvent{Mode: mode, Transition: shown, Parameter: entry.Parameter, SourceType: entry.SourceType()}
	for _, fn := range e.onNavigating {
		fn(ev)
		if ev.Cancel {
			e.stop(entry, mode, shown)
			return false
		}
	}

	// Cancelable checkpoint: the outgoing page.
	prev := e.history.Current()
	if prev != nil {
		if obs, is := prev.Page().(NavigatingObserver); is {
			from := &NavigatingEvent{Mode: mode, Transition: shown, Parameter: entry.Parameter, SourceType: entry.SourceType()}
			obs.OnNavigatingFrom(from)
			if from.Cancel {
				e.stop(entry, mode, shown)
				return false
			}
		}
	}

	// Resolve the instance: cache, then factory. An externally supplied
	// instance instead registers itself idempotently.
	if entry.Page() == nil {
		if mode == ModeNew {
			if page, _, hit := e.cache.Lookup(entry.SourceType(), nil); hit {
				entry.setPage(page)
			}
		}
		if entry.Page() == nil {
			page, err := e.cache.CreateOrReuse(entry.SourceType(), e.factory)
			if err != nil {
				e.fail(err, entry.SourceType())
				return false
			}
			if page == nil {
				e.fail(fmt.Errorf("resolve %s: factory returned nil page", entry.SourceType()), entry.SourceType())
				return false
			}
			entry.setPage(page)
		}
	} else {
		e.cache.TryAdd(entry.SourceType(), entry.Page())
	}

	// Promote. From here on the navigation commits.
	e.history.SetCurrent(entry)

	if prev != nil {
		if obs, is := prev.Page().(NavigatedFromObserver); is {
			obs.OnNavigatedFrom(NavigationEvent{
				Page: prev.Page(), Mode: mode, Transition: shown,
				Parameter: entry.Parameter, SourceType: entry.SourceType(),
			})
		}
	}

	// Fire-and-forget display; the state machine never waits for the
	// transition to finish.
	page := entry.Page()
	e.scheduler.Schedule(func() { e.presenter.Display(page, shown) })

	record := e.stackEnabled
	switch behavior {
	case HistoryEnabled:
		record = true
	case HistoryDisabled:
		record = false
	}
	if record {
		switch mode {
		case ModeNew:
			e.history.ClearForward()
			if prev != nil {
				e.history.PushBack(prev)
			}
		case ModeBack:
			if prev != nil {
				e.history.PushForward(prev)
			}
			e.history.RemoveBack(entry)
		case ModeForward:
			if prev != nil {
				e.history.PushBack(prev)
			}
			e.history.RemoveForward(entry)
		case ModeRefresh:
			// no stack mutation
		}
	}

	e.currentSourceType = entry.SourceType()

	done := NavigationEvent{
		Page: page, Mode: mode, Transition: shown,
		Parameter: entry.Parameter, SourceType: entry.SourceType(),
	}
	for _, fn := range e.onNavigated {
		fn(done)
	}
	e.emit(Event{Type: EventNavigated, SourceType: entry.SourceType(), Mode: mode})
	if obs, is := page.(NavigatedToObserver); is {
		obs.OnNavigatedTo(done)
	}
	return true
}

func (e *Engine) stop(entry *Entry, mode Mode, t Transition) {
	e.logger.Debug("navigation stopped", "sourceType", entry.SourceType(), "mode", mode.String())
	ev := NavigationEvent{
		Page: entry.Page(), Mode: mode, Transition: t,
		Parameter: entry.Parameter, SourceType: entry.SourceType(),
	}
	for _, fn := range e.onStopped {
		fn(ev)
	}
	e.emit(Event{Type: EventStopped, SourceType: entry.SourceType(), Mode: mode})
}

func (e *Engine) fail(err error, sourceType string) {
	e.logger.Error("navigation failed", "sourceType", sourceType, "error", err)
	ev := FailureEvent{Err: err, SourceType: sourceType}
	for _, fn := range e.onFailed {
		fn(ev)
	}
	e.emit(Event{Type: EventFailed, SourceType: sourceType, Err: err})
}

// emit publishes to the outcome channel without ever blocking the
// navigation thread; a full buffer drops the record.
func (e *Engine) emit(ev Event) {
	if e.events == nil {
		return
	}
	ev.Timestamp = time.Now().Unix()
	select {
	case e.events <- ev:
	default:
		e.logger.Debug("event buffer full, dropping", "event", ev.String())
	}
}

// --- Navigation state ---

// SerializeState renders the navigation history in the line-oriented text
// format understood by RestoreState. It is a usage error while the
// navigation stack is disabled.
func (e *Engine) SerializeState() (string, error) {
	if !e.stackEnabled {
		return "", ErrNavigationStackDisabled
	}
	return EncodeState(e.history)
}

// RestoreState replaces the navigation history with the serialized form.
// Existing history, cached pages and displayed content are dropped first.
// Entries whose type token no longer resolves are skipped with a
// diagnostic; structural damage in the input is fatal.
//
// With suppressNavigation the recorded current entry is appended to the
// back stack instead of being displayed and no current entry is set.
// Otherwise the current page is constructed, cached, displayed, and
// receives only the navigated-to notification.
func (e *Engine) RestoreState(state string, suppressNavigation bool) error {
	if !e.stackEnabled {
		return ErrNavigationStackDisabled
	}
	doc, err := ParseState(state)
	if err != nil {
		return err
	}

	e.history.Clear()
	e.cache.Clear()
	e.presenter.Clear()
	e.currentSourceType = ""

	// Appended after the recorded back entries so it becomes the most
	// recent one.
	var deferredCurrent *Entry

	if doc.Current != nil {
		switch {
		case !e.resolves(doc.Current.SourceType):
			e.logger.Warn("skipping unresolvable current entry", "sourceType", doc.Current.SourceType)
		case suppressNavigation:
			deferredCurrent = NewEntry(doc.Current.SourceType, doc.Current.Parameter, "")
		default:
			entry := NewEntry(doc.Current.SourceType, doc.Current.Parameter, "")
			page, err := e.cache.CreateOrReuse(entry.SourceType(), e.factory)
			if err != nil {
				return fmt.Errorf("restore current entry: %w", err)
			}
			entry.setPage(page)
			e.history.SetCurrent(entry)
			e.currentSourceType = entry.SourceType()
			shown := entry.effectiveTransition(e.defaultTransition)
			e.scheduler.Schedule(func() { e.presenter.Display(page, shown) })
			if obs, is := page.(NavigatedToObserver); is {
				obs.OnNavigatedTo(NavigationEvent{
					Page: page, Mode: ModeNew, Transition: shown,
					Parameter: entry.Parameter, SourceType: entry.SourceType(),
				})
			}
		}
	}

	for _, raw := range doc.Back {
		if !e.resolves(raw.SourceType) {
			e.logger.Warn("skipping unresolvable back-stack entry", "sourceType", raw.SourceType)
			continue
		}
		e.history.PushBack(NewEntry(raw.SourceType, raw.Parameter, ""))
	}
	if deferredCurrent != nil {
		e.history.PushBack(deferredCurrent)
	}
	for _, raw := range doc.Forward {
		if !e.resolves(raw.SourceType) {
			e.logger.Warn("skipping unresolvable forward-stack entry", "sourceType", raw.SourceType)
			continue
		}
		e.history.appendForward(NewEntry(raw.SourceType, raw.Parameter, ""))
	}
	return nil
}

func (e *Engine) resolves(sourceType string) bool {
	if r, is := e.factory.(Resolver); is {
		return r.Resolves(sourceType)
	}
	return true
}
