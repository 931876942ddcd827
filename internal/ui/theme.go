package ui

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/termfolio/internal/config"
)

// Theme defines colors and styles used across the console.
type Theme struct {
	BorderStyle string      // Border style (normal|rounded)
	Accent      color.Color // Section titles and highlights
	Text        color.Color // Body text
	Muted       color.Color // Secondary text, rules
	Heading     color.Color // Headings inside section bodies
	Link        color.Color // Header lines below the name
	PromptFG    color.Color // Prompt prefix
	InputFG     color.Color // Typed command text
	Placeholder color.Color // Placeholder text
	FlashFG     color.Color // Live flash message
	FlashFadeFG color.Color // Flash message while fading out
	HintFG      color.Color // Suggestion hint next to the flash
	OverlayFG   color.Color // Help overlay text
	OverlayBG   color.Color // Help overlay background
	BorderFG    color.Color // Help overlay border
	FooterFG    color.Color // Footer text
	FooterBG    color.Color // Footer background
	Cursor      color.Color // Typing cursor
}

// fallbackDefaultTheme is used when the embedded configuration cannot be read.
func fallbackDefaultTheme() Theme {
	return Theme{
		BorderStyle: "rounded",
		Accent:      lipgloss.Color("81"),  // cyan
		Text:        lipgloss.Color("252"), // light gray body
		Muted:       lipgloss.Color("245"), // muted gray
		Heading:     lipgloss.Color("81"),
		Link:        lipgloss.Color("117"),
		PromptFG:    lipgloss.Color("114"), // mint prompt
		InputFG:     lipgloss.Color("252"),
		Placeholder: lipgloss.Color("240"),
		FlashFG:     lipgloss.Color("203"), // soft red
		FlashFadeFG: lipgloss.Color("238"),
		HintFG:      lipgloss.Color("244"),
		OverlayFG:   lipgloss.Color("252"),
		OverlayBG:   lipgloss.Color("235"),
		BorderFG:    lipgloss.Color("81"),
		FooterFG:    lipgloss.Color("244"),
		FooterBG:    lipgloss.Color("236"),
		Cursor:      lipgloss.Color("81"),
	}
}

// ThemeFromConfig builds a Theme from a ThemeConfig, keeping base colors for
// empty fields.
func ThemeFromConfig(cfg config.ThemeConfig, base Theme) Theme {
	th := base
	set := func(val config.ColorValue, dst *color.Color) {
		if v := strings.TrimSpace(string(val)); v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	if cfg.BorderStyle != "" {
		th.BorderStyle = cfg.BorderStyle
	}
	set(cfg.Accent, &th.Accent)
	set(cfg.Text, &th.Text)
	set(cfg.Muted, &th.Muted)
	set(cfg.Heading, &th.Heading)
	set(cfg.Link, &th.Link)
	set(cfg.PromptFG, &th.PromptFG)
	set(cfg.InputFG, &th.InputFG)
	set(cfg.Placeholder, &th.Placeholder)
	set(cfg.FlashFG, &th.FlashFG)
	set(cfg.FlashFadeFG, &th.FlashFadeFG)
	set(cfg.HintFG, &th.HintFG)
	set(cfg.OverlayFG, &th.OverlayFG)
	set(cfg.OverlayBG, &th.OverlayBG)
	set(cfg.BorderFG, &th.BorderFG)
	set(cfg.FooterFG, &th.FooterFG)
	set(cfg.FooterBG, &th.FooterBG)
	set(cfg.Cursor, &th.Cursor)
	th.BorderStyle = normalizeBorderStyle(th.BorderStyle)
	return th
}

// ResolveTheme picks a named theme from the configured palettes.
func ResolveTheme(themes map[string]config.ThemeConfig, name string) (Theme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallbackDefaultTheme(), nil
	}
	tc, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(AvailableThemes(themes), ", "))
	}
	return ThemeFromConfig(tc, fallbackDefaultTheme()), nil
}

// AvailableThemes returns the configured theme names, sorted.
func AvailableThemes(themes map[string]config.ThemeConfig) []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeBorderStyle(val string) string {
	switch strings.TrimSpace(strings.ToLower(val)) {
	case "rounded", "round":
		return "rounded"
	default:
		return "normal"
	}
}

func borderForTheme(th Theme) lipgloss.Border {
	if normalizeBorderStyle(th.BorderStyle) == "rounded" {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}
