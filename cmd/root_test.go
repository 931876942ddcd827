package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag variable between command runs, since cobra
// commands and their bound variables are package globals.
func resetFlags(t *testing.T) {
	t.Helper()
	configFile, themeName, logFile, configOutput, exportOutput = "", "", "", "yaml", ""
	noColor, debug, renderSnapshot, watchContent, noTyping = false, false, false, false, false
	snapshotWidth, snapshotHeight = 0, 0
	startKeys = nil
	for _, fs := range []*pflag.FlagSet{
		rootCmd.Flags(), rootCmd.PersistentFlags(),
		configCmd.Flags(), configCmd.PersistentFlags(),
		exportCmd.Flags(),
	} {
		fs.VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const testPage = `title: Test Page
header:
  - text: Sam Tester
    typing: name
sections:
  - id: section-about
    title: About
    body: Writes tests for a living.
  - id: section-projects
    title: Projects
    body: |
      - [termfolio](https://example.com/termfolio)
`

func TestSnapshotRendersSample(t *testing.T) {
	out, err := executeCmd(t, "--snapshot", "--width", "100", "--height", "20", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Jordan Rivera")
	assert.Contains(t, out, "$ ")
	assert.NotContains(t, out, "\x1b[")
}

func TestSnapshotWithContentFileAndKeys(t *testing.T) {
	page := writeFile(t, "page.yaml", testPage)
	out, err := executeCmd(t, page, "--snapshot", "--width", "100", "--height", "30", "--no-color", "--press", "help<CR>")
	require.NoError(t, err)
	assert.Contains(t, out, "Available commands")
	assert.Contains(t, out, "Sam Tester")
}

func TestSnapshotUnknownCommandFlash(t *testing.T) {
	out, err := executeCmd(t, "--snapshot", "--width", "100", "--height", "20", "--no-color", "--press", "foobar", "--press", "<CR>")
	require.NoError(t, err)
	assert.Contains(t, out, "Command not found: 'foobar'. Type 'help' for available commands.")
}

func TestSnapshotUnknownTheme(t *testing.T) {
	_, err := executeCmd(t, "--snapshot", "--theme", "nope")
	require.Error(t, err)
	assert.Equal(t, exitUsage, ExitCode(err))
	var themeErr themeSelectionError
	require.True(t, errors.As(err, &themeErr))
	assert.Equal(t, "nope", themeErr.Selected)
	assert.Contains(t, themeErr.Available, "dark")
}

func TestSnapshotBadContentFile(t *testing.T) {
	page := writeFile(t, "page.yaml", "sections:\n  - id: \"\"\n    title: Broken\n")
	_, err := executeCmd(t, page, "--snapshot")
	require.Error(t, err)
	assert.Equal(t, exitUsage, ExitCode(err))
}

func TestWatchNeedsContentFile(t *testing.T) {
	_, err := executeCmd(t, "--watch")
	require.ErrorIs(t, err, errWatchNeedsFile)
	assert.Equal(t, exitUsage, ExitCode(err))
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "termfolio "))
	assert.Contains(t, out, "(go ")
}

func TestConfigCommandYAML(t *testing.T) {
	out, err := executeCmd(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "default: dark")
	assert.Contains(t, out, "display_ms: 3000")
	assert.NotContains(t, out, "go_version")
}

func TestConfigCommandJSONWithUserFile(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "ui:\n  flash:\n    display_ms: 1500\n")
	out, err := executeCmd(t, "config", "--config-file", cfgPath, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"display_ms": 1500`)
	assert.Contains(t, out, `"fade_ms": 300`)
}

func TestConfigCommandBadOutput(t *testing.T) {
	_, err := executeCmd(t, "config", "-o", "xml")
	require.Error(t, err)
	assert.Equal(t, exitUsage, ExitCode(err))
}

func TestConfigThemesCommand(t *testing.T) {
	out, err := executeCmd(t, "config", "themes")
	require.NoError(t, err)
	assert.Contains(t, out, "Available themes (default: dark):")
	assert.Contains(t, out, " - light")
	assert.Contains(t, out, " - mono")
}

func TestExportCommandToFile(t *testing.T) {
	page := writeFile(t, "page.toml", `title = "Toml Page"

[[sections]]
id = "section-about"
title = "About"
body = "Hello from **TOML**."
`)
	dest := filepath.Join(t.TempDir(), "page.html")
	_, err := executeCmd(t, "export", page, "-o", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<title>Toml Page</title>")
	assert.Contains(t, html, `<section id="section-about">`)
	assert.Contains(t, html, "<strong>TOML</strong>")
	assert.Contains(t, html, "<dt>achievements</dt>")
}

func TestExportCommandStdout(t *testing.T) {
	out, err := executeCmd(t, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `<section id="section-contact">`)
}

func TestExportUnsupportedFormat(t *testing.T) {
	page := writeFile(t, "page.txt", "hi")
	_, err := executeCmd(t, "export", page)
	require.Error(t, err)
	assert.Equal(t, exitUsage, ExitCode(err))
}

func TestResolveSnapshotSize(t *testing.T) {
	tests := []struct {
		name                  string
		flagW, flagH          int
		detW, detH            int
		wantWidth, wantHeight int
	}{
		{name: "flags win", flagW: 120, flagH: 40, detW: 80, detH: 24, wantWidth: 120, wantHeight: 40},
		{name: "detected", detW: 132, detH: 43, wantWidth: 132, wantHeight: 43},
		{name: "mixed", flagW: 90, detH: 30, wantWidth: 90, wantHeight: 30},
		{name: "fallback", wantWidth: defaultFallbackTermWidth, wantHeight: defaultFallbackTermHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := resolveSnapshotSize(tt.flagW, tt.flagH, tt.detW, tt.detH)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, exitFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, exitUsage, ExitCode(usageError(errors.New("bad"))))
	wrapped := usageError(errWatchNeedsFile)
	assert.ErrorIs(t, wrapped, errWatchNeedsFile)
	assert.Equal(t, errWatchNeedsFile.Error(), wrapped.Error())
}
