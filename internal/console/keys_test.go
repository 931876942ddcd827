package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleInputKey(t *testing.T) {
	t.Run("enter submits the current value", func(t *testing.T) {
		h := newHarness(t)
		h.input.value = "about"

		require.True(t, h.console.HandleInputKey(KeyEnter))
		assert.Equal(t, []string{"about"}, h.console.History())
		assert.Equal(t, []int{3}, h.scroll.requests)
	})
	t.Run("tab completes", func(t *testing.T) {
		h := newHarness(t)
		h.input.value = "edu"

		require.True(t, h.console.HandleInputKey(KeyTab))
		assert.Equal(t, "education", h.input.value)
	})
	t.Run("up and down walk history", func(t *testing.T) {
		h := newHarness(t)
		h.console.Execute("top")

		require.True(t, h.console.HandleInputKey(KeyUp))
		assert.Equal(t, "top", h.input.value)
		require.True(t, h.console.HandleInputKey(KeyDown))
		assert.Equal(t, "", h.input.value)
	})
	t.Run("escape closes, clears and blurs", func(t *testing.T) {
		h := newHarness(t)
		h.console.Execute("help")
		h.input.value = "half typed"

		require.True(t, h.console.HandleInputKey(KeyEscape))
		assert.False(t, h.console.OverlayVisible())
		assert.Empty(t, h.input.value)
		assert.False(t, h.input.focused)
	})
	t.Run("other keys pass through", func(t *testing.T) {
		h := newHarness(t)
		h.input.value = "ab"

		assert.False(t, h.console.HandleInputKey(Key("a")))
		assert.False(t, h.console.HandleInputKey(KeySlash))
		assert.Equal(t, "ab", h.input.value)
		assert.Empty(t, h.console.History())
	})
}

func TestHandleGlobalKeySlash(t *testing.T) {
	tests := []struct {
		name          string
		focused       bool
		fromTextEntry bool
		wantHandled   bool
		wantFocused   bool
	}{
		{name: "focuses a blurred prompt", wantHandled: true, wantFocused: true},
		{name: "ignored while prompt focused", focused: true, wantHandled: false, wantFocused: true},
		{name: "ignored from other text entry", fromTextEntry: true, wantHandled: false, wantFocused: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.input.focused = tt.focused

			got := h.console.HandleGlobalKey(KeySlash, tt.fromTextEntry)

			assert.Equal(t, tt.wantHandled, got)
			assert.Equal(t, tt.wantFocused, h.input.focused)
			assert.Empty(t, h.input.sets)
		})
	}
}

func TestHandleGlobalKeyEscape(t *testing.T) {
	h := newHarness(t)
	h.input.focused = false
	h.console.ToggleOverlay()

	assert.True(t, h.console.HandleGlobalKey(KeyEscape, false))
	assert.False(t, h.console.OverlayVisible())

	// Closing an already hidden overlay is harmless.
	assert.True(t, h.console.HandleGlobalKey(KeyEscape, false))
	assert.False(t, h.console.OverlayVisible())

	assert.False(t, h.console.HandleGlobalKey(KeyTab, false))
}

func TestHandleRegionClick(t *testing.T) {
	t.Run("focuses the prompt", func(t *testing.T) {
		h := newHarness(t)
		h.input.focused = false

		h.console.HandleRegionClick()
		assert.True(t, h.input.focused)
	})
	t.Run("leaves focus alone while text is selected", func(t *testing.T) {
		h := newHarness(t)
		h.input.focused = false
		h.selection = true

		h.console.HandleRegionClick()
		assert.False(t, h.input.focused)
	})
}

func TestHandleOverlayClick(t *testing.T) {
	h := newHarness(t)
	h.console.ToggleOverlay()

	h.console.HandleOverlayClick(false)
	assert.True(t, h.console.OverlayVisible())

	h.console.HandleOverlayClick(true)
	assert.False(t, h.console.OverlayVisible())
}
