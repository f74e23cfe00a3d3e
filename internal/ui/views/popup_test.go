package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetTop(t *testing.T) {
	assert.Equal(t, 7, SheetTop(3, 10))
	assert.Equal(t, 0, SheetTop(12, 10))
}

func TestRenderSheetOverlayAnchorsAtBottom(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())

	base := "line0\nline1\nline2\nline3"
	out := pr.RenderSheetOverlay(base, "S1\nS2", 20, 5)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "line0", ansi.Strip(lines[0]))
	assert.Equal(t, "line2", ansi.Strip(lines[2]))
	assert.Equal(t, "S1", lines[3])
	assert.Equal(t, "S2", lines[4])
}

func TestRenderSheetOverlayKeepsBottomOfTallSheet(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())

	out := pr.RenderSheetOverlay("", "a\nb\nc\nd", 10, 2)
	assert.Equal(t, "c\nd", out)
}
