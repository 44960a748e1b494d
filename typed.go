package pageflow

import "github.com/tobyv/pageflow/pkg/core"

// Define registers a typed page constructor under name. It is the generic
// equivalent of Registry.Register for concrete page types, sparing callers
// the wrap to core.Page.
func Define[P any](r *core.Registry, name string, ctor func() *P) {
	r.Register(name, func() core.Page { return ctor() })
}
