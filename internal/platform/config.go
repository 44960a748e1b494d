package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tobyv/pageflow/pkg/core"
)

// FileConfig is the YAML shape of an engine configuration file.
//
//	cache_size: 4
//	navigation_stack: true
//	default_transition: slide
//	event_buffer: 64
type FileConfig struct {
	CacheSize         *int   `yaml:"cache_size"`
	NavigationStack   *bool  `yaml:"navigation_stack"`
	DefaultTransition string `yaml:"default_transition"`
	EventBuffer       int    `yaml:"event_buffer"`
}

// LoadOptions reads a YAML configuration file and converts it to functional
// options. Absent keys leave the defaults untouched.
func LoadOptions(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var opts []Option
	if cfg.CacheSize != nil {
		opts = append(opts, WithCacheSize(*cfg.CacheSize))
	}
	if cfg.NavigationStack != nil {
		opts = append(opts, WithNavigationStack(*cfg.NavigationStack))
	}
	if cfg.DefaultTransition != "" {
		opts = append(opts, WithDefaultTransition(core.Transition(cfg.DefaultTransition)))
	}
	if cfg.EventBuffer > 0 {
		opts = append(opts, WithEventBuffer(cfg.EventBuffer))
	}
	return opts, nil
}
