package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobyv/pageflow"
)

// TestConfiguredEngine builds an engine from a YAML file through the facade
// and verifies the configuration actually takes effect.
func TestConfiguredEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pageflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_size: 0\nnavigation_stack: false\n"), 0644))

	opts, err := pageflow.LoadOptions(path)
	require.NoError(t, err)

	registry := pageflow.NewRegistry()
	registry.Register("app.Home", func() pageflow.Page { return &struct{}{} })
	opts = append(opts, pageflow.WithFactory(registry))

	engine := pageflow.New(opts...)
	assert.False(t, engine.NavigationStackEnabled())

	require.True(t, engine.Navigate("app.Home", nil))
	require.True(t, engine.Navigate("app.Home", nil))
	// History recording is off: no back stack accumulates.
	assert.False(t, engine.CanGoBack())

	_, err = engine.SerializeState()
	assert.Error(t, err)
}
