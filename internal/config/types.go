// Package config holds the typed configuration shared by the CLI and the UI.
//
// The embedded default_config.yaml is the single source of truth for defaults;
// user files are merged on top of it by the cmd package.
package config

import "time"

// ColorValue is a lipgloss color string: an ANSI index ("81") or hex ("#5fd7ff").
type ColorValue string

// File is the on-disk configuration layout.
type File struct {
	App AppConfig `yaml:"app" json:"app"`
	UI  UIConfig  `yaml:"ui" json:"ui"`
}

// AppConfig carries metadata shown in the header and `version` output.
type AppConfig struct {
	About AboutConfig `yaml:"about" json:"about"`
}

// AboutConfig describes the application. Version and build fields are filled
// from build info at runtime and never read from files.
type AboutConfig struct {
	Name          string `yaml:"name,omitempty" json:"name,omitempty"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	RepositoryURL string `yaml:"repository_url,omitempty" json:"repository_url,omitempty"`
	Version       string `yaml:"version,omitempty" json:"version,omitempty"`
	GoVersion     string `yaml:"go_version,omitempty" json:"go_version,omitempty"`
	BuildOS       string `yaml:"build_os,omitempty" json:"build_os,omitempty"`
	BuildArch     string `yaml:"build_arch,omitempty" json:"build_arch,omitempty"`
	GitCommit     string `yaml:"git_commit,omitempty" json:"git_commit,omitempty"`
}

// UIConfig groups the console's presentation and timing settings.
type UIConfig struct {
	Theme  ThemeSelectionConfig   `yaml:"theme" json:"theme"`
	Prompt PromptConfig           `yaml:"prompt" json:"prompt"`
	Scroll ScrollConfig           `yaml:"scroll" json:"scroll"`
	Flash  FlashConfig            `yaml:"flash" json:"flash"`
	Typing TypingConfig           `yaml:"typing" json:"typing"`
	Themes map[string]ThemeConfig `yaml:"themes,omitempty" json:"themes,omitempty"`
}

// ThemeSelectionConfig names the active theme.
type ThemeSelectionConfig struct {
	Default string `yaml:"default,omitempty" json:"default,omitempty"`
}

// PromptConfig configures the command input line.
type PromptConfig struct {
	Prefix      string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	CharLimit   *int   `yaml:"char_limit,omitempty" json:"char_limit,omitempty"`
}

// ScrollConfig controls section navigation.
type ScrollConfig struct {
	// Padding is the number of rows left above a section heading.
	Padding *int  `yaml:"padding,omitempty" json:"padding,omitempty"`
	Smooth  *bool `yaml:"smooth,omitempty" json:"smooth,omitempty"`
	// Steps is the number of frames in a smooth scroll.
	Steps  *int `yaml:"steps,omitempty" json:"steps,omitempty"`
	StepMS *int `yaml:"step_ms,omitempty" json:"step_ms,omitempty"`
}

// FlashConfig holds the notification timings in milliseconds.
type FlashConfig struct {
	DisplayMS *int `yaml:"display_ms,omitempty" json:"display_ms,omitempty"`
	FadeMS    *int `yaml:"fade_ms,omitempty" json:"fade_ms,omitempty"`
}

// TypingConfig holds the header animation settings.
type TypingConfig struct {
	Enabled        *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	MinWidth       *int  `yaml:"min_width,omitempty" json:"min_width,omitempty"`
	NameIntervalMS *int  `yaml:"name_interval_ms,omitempty" json:"name_interval_ms,omitempty"`
	IntervalMS     *int  `yaml:"interval_ms,omitempty" json:"interval_ms,omitempty"`
	PauseMS        *int  `yaml:"pause_ms,omitempty" json:"pause_ms,omitempty"`
	CursorLingerMS *int  `yaml:"cursor_linger_ms,omitempty" json:"cursor_linger_ms,omitempty"`
}

// ThemeConfig is a palette as written in configuration files.
type ThemeConfig struct {
	BorderStyle string     `yaml:"border_style,omitempty" json:"border_style,omitempty"`
	Accent      ColorValue `yaml:"accent,omitempty" json:"accent,omitempty"`
	Text        ColorValue `yaml:"text,omitempty" json:"text,omitempty"`
	Muted       ColorValue `yaml:"muted,omitempty" json:"muted,omitempty"`
	Heading     ColorValue `yaml:"heading,omitempty" json:"heading,omitempty"`
	Link        ColorValue `yaml:"link,omitempty" json:"link,omitempty"`
	PromptFG    ColorValue `yaml:"prompt_fg,omitempty" json:"prompt_fg,omitempty"`
	InputFG     ColorValue `yaml:"input_fg,omitempty" json:"input_fg,omitempty"`
	Placeholder ColorValue `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	FlashFG     ColorValue `yaml:"flash_fg,omitempty" json:"flash_fg,omitempty"`
	FlashFadeFG ColorValue `yaml:"flash_fade_fg,omitempty" json:"flash_fade_fg,omitempty"`
	HintFG      ColorValue `yaml:"hint_fg,omitempty" json:"hint_fg,omitempty"`
	OverlayFG   ColorValue `yaml:"overlay_fg,omitempty" json:"overlay_fg,omitempty"`
	OverlayBG   ColorValue `yaml:"overlay_bg,omitempty" json:"overlay_bg,omitempty"`
	BorderFG    ColorValue `yaml:"border_fg,omitempty" json:"border_fg,omitempty"`
	FooterFG    ColorValue `yaml:"footer_fg,omitempty" json:"footer_fg,omitempty"`
	FooterBG    ColorValue `yaml:"footer_bg,omitempty" json:"footer_bg,omitempty"`
	Cursor      ColorValue `yaml:"cursor,omitempty" json:"cursor,omitempty"`
}

// IntOr dereferences p, returning def when it is nil.
func IntOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// BoolOr dereferences p, returning def when it is nil.
func BoolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// Millis converts a millisecond setting to a duration, returning def when unset
// or not positive.
func Millis(p *int, def time.Duration) time.Duration {
	if p == nil || *p <= 0 {
		return def
	}
	return time.Duration(*p) * time.Millisecond
}
