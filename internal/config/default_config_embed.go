package config

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

var (
	embeddedConfigOnce sync.Once
	embeddedConfig     File
	embeddedConfigErr  error
)

// DefaultConfigYAML returns a copy of the embedded default config YAML bytes.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// EmbeddedDefault parses and returns the embedded default configuration.
// Callers receive a copy and may modify it freely.
func EmbeddedDefault() (File, error) {
	embeddedConfigOnce.Do(func() {
		if len(embeddedDefaultConfig) == 0 {
			embeddedConfigErr = fmt.Errorf("embedded default config is empty")
			return
		}
		if err := yaml.Unmarshal(embeddedDefaultConfig, &embeddedConfig); err != nil {
			embeddedConfigErr = fmt.Errorf("decode embedded default config: %w", err)
			return
		}
		if embeddedConfig.UI.Themes == nil {
			embeddedConfig.UI.Themes = map[string]ThemeConfig{}
		}
	})
	if embeddedConfigErr != nil {
		return File{}, embeddedConfigErr
	}
	out := embeddedConfig
	out.UI.Themes = make(map[string]ThemeConfig, len(embeddedConfig.UI.Themes))
	for name, th := range embeddedConfig.UI.Themes {
		out.UI.Themes[name] = th
	}
	return out, nil
}
