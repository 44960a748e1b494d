package platform

import (
	"github.com/tobyv/pageflow/pkg/core"
)

// New assembles a navigation engine from functional options.
//
//	engine := pageflow.New(
//		pageflow.WithFactory(registry),
//		pageflow.WithCacheSize(4),
//	)
func New(opts ...Option) *core.Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return core.NewEngine(core.Config{
		Factory:           o.factory,
		Objects:           o.objects,
		Presenter:         o.presenter,
		Scheduler:         o.scheduler,
		Logger:            o.logger,
		CacheSize:         o.cacheSize,
		NavigationStack:   o.navigationStack,
		DefaultTransition: o.defaultTransition,
		EventBuffer:       o.eventBuffer,
	})
}
