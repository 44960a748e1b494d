package platform

import (
	"log/slog"

	"github.com/tobyv/pageflow/pkg/core"
)

// options holds the internal configuration for the navigation engine.
type options struct {
	factory           core.Factory
	objects           core.ObjectFactory
	presenter         core.Presenter
	scheduler         core.Scheduler
	logger            *slog.Logger
	cacheSize         int
	navigationStack   bool
	defaultTransition core.Transition
	eventBuffer       int
}

// Option defines a functional option for configuring the engine.
type Option func(*options)

// defaultOptions returns the default configuration: a ten-page cache with
// history recording enabled.
func defaultOptions() *options {
	return &options{
		cacheSize:       10,
		navigationStack: true,
	}
}

// WithFactory sets the page factory that resolves source types to pages.
// Defaults to an empty registry, in which every navigation fails to resolve.
func WithFactory(f core.Factory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// WithObjectFactory sets the factory for the navigate-from-object path.
func WithObjectFactory(f core.ObjectFactory) Option {
	return func(o *options) {
		o.objects = f
	}
}

// WithPresenter sets the presentation sink pages are displayed through.
func WithPresenter(p core.Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}

// WithScheduler sets the dispatcher used for the deferred transition
// invocation. Defaults to running the work inline.
func WithScheduler(s core.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithLogger sets the logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCacheSize sets the shared capacity of the page cache and the back
// stack. Zero disables caching entirely and keeps the back stack empty.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithNavigationStack enables or disables history recording.
func WithNavigationStack(enabled bool) Option {
	return func(o *options) {
		o.navigationStack = enabled
	}
}

// WithDefaultTransition sets the transition used when an entry carries no
// override. Defaults to the built-in entrance transition.
func WithDefaultTransition(t core.Transition) Option {
	return func(o *options) {
		o.defaultTransition = t
	}
}

// WithEventBuffer sets the size of the navigation outcome channel. Zero
// (the default) disables the channel.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}
