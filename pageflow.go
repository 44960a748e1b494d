package pageflow

import (
	"log/slog"

	"github.com/tobyv/pageflow/internal/platform"
	"github.com/tobyv/pageflow/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// Engine is the public alias for the navigation engine.
type Engine = core.Engine

// Entry is one navigated-to page occurrence.
type Entry = core.Entry

// Page is the unit of display managed by the engine.
type Page = core.Page

// Mode identifies how a navigation entered the history.
type Mode = core.Mode

// Transition describes the animation handed to the presentation layer.
type Transition = core.Transition

// Options tune a single navigation request.
type Options = core.Options

// Registry is the standard page factory backed by registered constructors.
type Registry = core.Registry

// Navigation modes.
const (
	ModeNew     = core.ModeNew
	ModeBack    = core.ModeBack
	ModeForward = core.ModeForward
	ModeRefresh = core.ModeRefresh
)

// Built-in transitions.
const (
	TransitionEntrance = core.TransitionEntrance
	TransitionSuppress = core.TransitionSuppress
	TransitionSlide    = core.TransitionSlide
	TransitionDrillIn  = core.TransitionDrillIn
)

// --- Configuration ---

// Option defines a functional option for configuring the engine.
type Option = platform.Option

// WithFactory sets the page factory that resolves source types to pages.
func WithFactory(f core.Factory) Option {
	return platform.WithFactory(f)
}

// WithObjectFactory sets the factory for the navigate-from-object path.
func WithObjectFactory(f core.ObjectFactory) Option {
	return platform.WithObjectFactory(f)
}

// WithPresenter sets the presentation sink pages are displayed through.
func WithPresenter(p core.Presenter) Option {
	return platform.WithPresenter(p)
}

// WithScheduler sets the dispatcher for the deferred transition invocation.
func WithScheduler(s core.Scheduler) Option {
	return platform.WithScheduler(s)
}

// WithLogger sets the logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithCacheSize sets the shared capacity of the page cache and the back
// stack. Zero disables caching.
func WithCacheSize(size int) Option {
	return platform.WithCacheSize(size)
}

// WithNavigationStack enables or disables history recording.
func WithNavigationStack(enabled bool) Option {
	return platform.WithNavigationStack(enabled)
}

// WithDefaultTransition sets the transition used when an entry carries no
// override.
func WithDefaultTransition(t core.Transition) Option {
	return platform.WithDefaultTransition(t)
}

// WithEventBuffer sets the size of the navigation outcome channel.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New assembles a navigation engine from functional options.
func New(opts ...Option) *core.Engine {
	return platform.New(opts...)
}

// LoadOptions reads functional options from a YAML configuration file.
func LoadOptions(path string) ([]Option, error) {
	return platform.LoadOptions(path)
}

// NewRegistry creates an empty page registry.
func NewRegistry() *core.Registry {
	return core.NewRegistry()
}
