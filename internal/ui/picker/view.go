package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	triggerGap     = 1
	cursorMarker   = "> "
	selectedMarker = " ✓"
)

func widthOf(s string) int  { return lipgloss.Width(s) }
func heightOf(s string) int { return lipgloss.Height(s) }

// View renders the two trigger buttons
func (m *Model) View() string {
	month, year := m.renderTriggers(m.picker.Render())
	return lipgloss.JoinHorizontal(lipgloss.Top, month, strings.Repeat(" ", triggerGap), year)
}

// Overlay draws the open sheet over the host's full-screen frame. It
// returns base unchanged while the picker is closed.
func (m *Model) Overlay(base string) string {
	v := m.picker.Render()
	if v.Modal == nil {
		return base
	}
	return m.popup.RenderSheetOverlay(base, m.renderSheet(v.Modal), m.width, m.height)
}

func (m *Model) renderTriggers(v View) (string, string) {
	highlighted := m.focus
	if m.picker.State().Open {
		highlighted = v.Active
	}

	style := func(mode Mode) lipgloss.Style {
		if mode == highlighted {
			return m.styles.TriggerFocused
		}
		return m.styles.Trigger
	}
	return style(ModeMonth).Render(v.MonthLabel), style(ModeYear).Render(v.YearLabel)
}

func (m *Model) renderSheet(mv *ModalView) string {
	innerW := m.width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := m.styles.SheetTitle.Render(mv.Title)
	closeBtn := m.styles.Close.Render(mv.Close)
	gap := innerW - widthOf(title) - widthOf(closeBtn)
	if gap < 1 {
		gap = 1
	}

	lines := []string{
		title + strings.Repeat(" ", gap) + closeBtn,
		m.styles.SheetRule.Render(strings.Repeat("─", innerW)),
	}

	visible := m.visibleRows(len(mv.Rows))
	for i := m.offset; i < m.offset+visible && i < len(mv.Rows); i++ {
		lines = append(lines, m.renderRow(mv.Rows[i], innerW))
	}

	return m.styles.Sheet.Width(innerW + 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderRow(r Row, width int) string {
	prefix, suffix := "  ", "  "
	if r.Cursor {
		prefix = cursorMarker
	}
	if r.Selected {
		suffix = selectedMarker
	}

	st := m.styles.Option
	if r.Selected {
		st = m.styles.OptionPick
	}
	if r.Cursor {
		st = st.Background(m.styles.OptionFocus.GetBackground())
	}
	return st.Width(width).Align(lipgloss.Center).Render(prefix + r.Value + suffix)
}
