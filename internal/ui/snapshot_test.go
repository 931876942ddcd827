package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRendersHeaderAndPrompt(t *testing.T) {
	rendered, err := RenderModelSnapshot(testOptions(t, 0, 0), ModelSnapshotConfig{
		Width:   100,
		Height:  24,
		NoColor: true,
	})
	require.NoError(t, err)

	assert.Contains(t, rendered, "Jordan Rivera")
	assert.Contains(t, rendered, "About")
	assert.Contains(t, rendered, "$ ")
	assert.NotContains(t, rendered, "\x1b[")
	assert.Len(t, strings.Split(rendered, "\n"), 24)
}

func TestSnapshotStartKeysOpenHelp(t *testing.T) {
	rendered, err := RenderModelSnapshot(testOptions(t, 0, 0), ModelSnapshotConfig{
		Width:     100,
		Height:    30,
		NoColor:   true,
		StartKeys: []string{"help<CR>"},
	})
	require.NoError(t, err)

	assert.Contains(t, rendered, "Available commands")
	assert.Contains(t, rendered, "achievements")
	assert.Contains(t, rendered, "jump to contact details")
}

func TestSnapshotStartKeysJumpToSection(t *testing.T) {
	rendered, err := RenderModelSnapshot(testOptions(t, 0, 0), ModelSnapshotConfig{
		Width:     100,
		Height:    16,
		NoColor:   true,
		StartKeys: []string{"education<CR>"},
	})
	require.NoError(t, err)

	lines := strings.Split(rendered, "\n")
	require.NotEmpty(t, lines)
	assert.NotContains(t, lines[0], "Jordan Rivera")
	assert.Contains(t, strings.Join(lines[:3], "\n"), "Education")
}

func TestSnapshotUnknownCommandShowsFlash(t *testing.T) {
	rendered, err := RenderModelSnapshot(testOptions(t, 0, 0), ModelSnapshotConfig{
		Width:     100,
		Height:    20,
		NoColor:   true,
		StartKeys: []string{"projcts<CR>"},
	})
	require.NoError(t, err)

	assert.Contains(t, rendered, "Command not found: 'projcts'")
	assert.Contains(t, rendered, "did you mean 'projects'?")
}

func TestSnapshotBlurredFooter(t *testing.T) {
	rendered, err := RenderModelSnapshot(testOptions(t, 0, 0), ModelSnapshotConfig{
		Width:   100,
		Height:  20,
		NoColor: true,
		Blur:    true,
	})
	require.NoError(t, err)
	assert.Contains(t, rendered, "/ prompt")
}

func TestSnapshotDebugBar(t *testing.T) {
	opts := testOptions(t, 0, 0)
	opts.Debug = true
	rendered, err := RenderModelSnapshot(opts, ModelSnapshotConfig{Width: 120, Height: 20, NoColor: true})
	require.NoError(t, err)
	assert.Contains(t, rendered, "DBG: win=120x20")
}

func TestPadSnapshotHeightUsesWidthPadding(t *testing.T) {
	view := "only"
	got := padSnapshotHeight(view, 3, 6)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Len(t, lines[1], 6)
}
