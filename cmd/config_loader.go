package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	rdebug "runtime/debug"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/termfolio/internal/config"
	"github.com/oakwood-commons/termfolio/pkg/settings"
)

// configLoader centralizes config loading so callers avoid duplicating merge logic.
type configLoader struct {
	defaults func() (config.File, error)
}

var cfgLoader = configLoader{defaults: config.EmbeddedDefault}

func loadMergedConfig(cfgPath string) (config.File, error) {
	return cfgLoader.loadMergedConfig(cfgPath)
}

// loadMergedConfig layers the user file at cfgPath (if any) over the embedded
// defaults and fills the build-derived about fields.
func (l configLoader) loadMergedConfig(cfgPath string) (config.File, error) {
	cfg, err := l.defaults()
	if err != nil {
		return cfg, fmt.Errorf("load default config: %w", err)
	}
	if cfg.UI.Theme.Default == "" || len(cfg.UI.Themes) == 0 {
		return cfg, fmt.Errorf("default config is missing required theme defaults")
	}

	if cfgPath != "" {
		data, err := os.ReadFile(cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
		var user config.File
		if err := yaml.Unmarshal(data, &user); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", cfgPath, err)
		}
		cfg = mergeConfig(cfg, user)
	}

	applyBuildData(&cfg, buildVersionData())
	return cfg, nil
}

// mergeConfig overlays every field the override sets.
func mergeConfig(base, override config.File) config.File {
	out := base
	str := func(src string, dst *string) {
		if strings.TrimSpace(src) != "" {
			*dst = src
		}
	}
	str(override.App.About.Name, &out.App.About.Name)
	str(override.App.About.Description, &out.App.About.Description)
	str(override.App.About.RepositoryURL, &out.App.About.RepositoryURL)

	ui, ov := &out.UI, override.UI
	str(ov.Theme.Default, &ui.Theme.Default)
	str(ov.Prompt.Prefix, &ui.Prompt.Prefix)
	str(ov.Prompt.Placeholder, &ui.Prompt.Placeholder)
	mergePtr(ov.Prompt.CharLimit, &ui.Prompt.CharLimit)
	mergePtr(ov.Scroll.Padding, &ui.Scroll.Padding)
	mergePtr(ov.Scroll.Smooth, &ui.Scroll.Smooth)
	mergePtr(ov.Scroll.Steps, &ui.Scroll.Steps)
	mergePtr(ov.Scroll.StepMS, &ui.Scroll.StepMS)
	mergePtr(ov.Flash.DisplayMS, &ui.Flash.DisplayMS)
	mergePtr(ov.Flash.FadeMS, &ui.Flash.FadeMS)
	mergePtr(ov.Typing.Enabled, &ui.Typing.Enabled)
	mergePtr(ov.Typing.MinWidth, &ui.Typing.MinWidth)
	mergePtr(ov.Typing.NameIntervalMS, &ui.Typing.NameIntervalMS)
	mergePtr(ov.Typing.IntervalMS, &ui.Typing.IntervalMS)
	mergePtr(ov.Typing.PauseMS, &ui.Typing.PauseMS)
	mergePtr(ov.Typing.CursorLingerMS, &ui.Typing.CursorLingerMS)

	if len(ov.Themes) > 0 {
		merged := make(map[string]config.ThemeConfig, len(base.UI.Themes)+len(ov.Themes))
		for name, th := range base.UI.Themes {
			merged[name] = th
		}
		for name, th := range ov.Themes {
			// New themes start from dark so partial palettes stay readable.
			b, ok := merged[name]
			if !ok {
				b = base.UI.Themes["dark"]
			}
			merged[name] = mergeThemeConfig(b, th)
		}
		ui.Themes = merged
	}
	return out
}

func mergePtr[T any](src *T, dst **T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func mergeThemeConfig(base, override config.ThemeConfig) config.ThemeConfig {
	out := base
	apply := func(src config.ColorValue, dst *config.ColorValue) {
		if src != "" {
			*dst = src
		}
	}
	if strings.TrimSpace(override.BorderStyle) != "" {
		out.BorderStyle = override.BorderStyle
	}
	apply(override.Accent, &out.Accent)
	apply(override.Text, &out.Text)
	apply(override.Muted, &out.Muted)
	apply(override.Heading, &out.Heading)
	apply(override.Link, &out.Link)
	apply(override.PromptFG, &out.PromptFG)
	apply(override.InputFG, &out.InputFG)
	apply(override.Placeholder, &out.Placeholder)
	apply(override.FlashFG, &out.FlashFG)
	apply(override.FlashFadeFG, &out.FlashFadeFG)
	apply(override.HintFG, &out.HintFG)
	apply(override.OverlayFG, &out.OverlayFG)
	apply(override.OverlayBG, &out.OverlayBG)
	apply(override.BorderFG, &out.BorderFG)
	apply(override.FooterFG, &out.FooterFG)
	apply(override.FooterBG, &out.FooterBG)
	apply(override.Cursor, &out.Cursor)
	return out
}

func buildVersionData() map[string]string {
	info, ok := rdebug.ReadBuildInfo()

	version := settings.VersionInformation.BuildVersion
	goVersion := runtime.Version()
	buildOS := runtime.GOOS
	buildArch := runtime.GOARCH
	gitCommit := ""

	if ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if len(s.Value) >= 7 {
					gitCommit = s.Value[:7]
				}
			case "GOOS":
				buildOS = s.Value
			case "GOARCH":
				buildArch = s.Value
			}
		}
	}
	if gitCommit == "" && settings.VersionInformation.Commit != "unknown" {
		gitCommit = settings.VersionInformation.Commit
	}

	return map[string]string{
		"Version":   version,
		"GoVersion": goVersion,
		"BuildOS":   buildOS,
		"BuildArch": buildArch,
		"GitCommit": gitCommit,
	}
}

func applyBuildData(cfg *config.File, buildData map[string]string) {
	about := &cfg.App.About
	about.Version = buildData["Version"]
	about.GoVersion = buildData["GoVersion"]
	about.BuildOS = buildData["BuildOS"]
	about.BuildArch = buildData["BuildArch"]
	about.GitCommit = buildData["GitCommit"]
}

// sanitizeConfig drops the build-derived fields, which are never read from
// files, before a config is printed.
func sanitizeConfig(cfg config.File) config.File {
	out := cfg
	out.App.About = config.AboutConfig{
		Name:          cfg.App.About.Name,
		Description:   cfg.App.About.Description,
		RepositoryURL: cfg.App.About.RepositoryURL,
	}
	return out
}

// resolveConfigPath returns the explicit path, or the XDG config file when it
// exists, or "".
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}
