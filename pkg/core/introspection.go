package core

import (
	"github.com/aretw0/introspection"
)

// EngineState exposes internal state for observability.
type EngineState struct {
	CurrentSourceType string `json:"current_source_type"`
	BackDepth         int    `json:"back_depth"`
	ForwardDepth      int    `json:"forward_depth"`
	CachedPages       int    `json:"cached_pages"`
	CacheCapacity     int    `json:"cache_capacity"`
	NavigationStack   bool   `json:"navigation_stack"`
	Navigating        bool   `json:"navigating"`
}

// State implements introspection.Introspectable.
func (e *Engine) State() any {
	return EngineState{
		CurrentSourceType: e.currentSourceType,
		BackDepth:         len(e.history.BackEntries()),
		ForwardDepth:      len(e.history.ForwardEntries()),
		CachedPages:       e.cache.Len(),
		CacheCapacity:     e.cache.Capacity(),
		NavigationStack:   e.stackEnabled,
		Navigating:        e.navigating,
	}
}

// ComponentType implements introspection.Component.
func (e *Engine) ComponentType() string {
	return "navigation-engine"
}

var _ introspection.Introspectable = (*Engine)(nil)
var _ introspection.Component = (*Engine)(nil)
