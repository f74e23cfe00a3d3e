package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// SheetTop returns the first screen row of a bottom sheet of sheetHeight
// rows on a screen of height rows.
func SheetTop(sheetHeight, height int) int {
	if sheetHeight > height {
		return 0
	}
	return height - sheetHeight
}

// RenderSheetOverlay draws sheet anchored to the bottom of a height-row
// screen, on top of mainContent. Rows behind the sheet are replaced and
// the rows above are greyed out.
func (pr *PopupRenderer) RenderSheetOverlay(mainContent, sheet string, width, height int) string {
	if height <= 0 {
		return sheet
	}
	base := fitLines(mainContent, height)
	sheetLines := strings.Split(sheet, "\n")
	if len(sheetLines) > height {
		sheetLines = sheetLines[len(sheetLines)-height:]
	}
	top := SheetTop(len(sheetLines), height)

	out := make([]string, height)
	for i := 0; i < top; i++ {
		out[i] = desaturateANSI(base[i])
	}
	for i, line := range sheetLines {
		if width > 0 {
			line = ansi.Truncate(line, width, "")
		}
		out[top+i] = line
	}
	return strings.Join(out, "\n")
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansi.Strip(s)
	if strings.TrimSpace(plain) == "" {
		return plain
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
}

// fitLines pads or cuts s to exactly height lines
func fitLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
