package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oakwood-commons/termfolio/internal/config"
	"github.com/oakwood-commons/termfolio/internal/ui"
)

// Exit codes returned by main.
const (
	exitFailure = 1
	// exitUsage covers bad configuration, themes and content files.
	exitUsage = 2
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return exitFailure
}

func usageError(err error) error {
	return &ExitError{Code: exitUsage, Err: err}
}

type themeSelectionError struct {
	Selected     string
	Available    []string
	DefaultTheme string
}

func (e themeSelectionError) Error() string {
	return fmt.Sprintf("unknown theme %q\navailable themes: %v\ndefault theme: %s", e.Selected, e.Available, e.DefaultTheme)
}

func defaultThemeName(cfg config.File) string {
	if name := strings.TrimSpace(cfg.UI.Theme.Default); name != "" {
		return name
	}
	return "dark"
}

// selectTheme resolves the --theme flag, or the configured default when the
// flag is not set.
func selectTheme(cfg config.File, cliTheme string, themeFlagSet bool) (ui.Theme, error) {
	selected := strings.TrimSpace(cliTheme)
	if !themeFlagSet || selected == "" {
		selected = defaultThemeName(cfg)
	}
	if _, ok := cfg.UI.Themes[selected]; !ok {
		return ui.Theme{}, themeSelectionError{
			Selected:     selected,
			Available:    ui.AvailableThemes(cfg.UI.Themes),
			DefaultTheme: defaultThemeName(cfg),
		}
	}
	return ui.ResolveTheme(cfg.UI.Themes, selected)
}

// loadConfigState loads the merged config and resolves the theme for CLI flows.
func loadConfigState(path, cliTheme string, themeFlagSet bool) (config.File, ui.Theme, error) {
	cfg, err := loadMergedConfig(path)
	if err != nil {
		return cfg, ui.Theme{}, usageError(err)
	}
	th, err := selectTheme(cfg, cliTheme, themeFlagSet)
	if err != nil {
		return cfg, ui.Theme{}, usageError(err)
	}
	return cfg, th, nil
}
