package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"expirypicker/internal/ui/views"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minSheetRows  = 5
	// border (2) + header line + rule line
	sheetChrome = 4
)

// Model adapts a Picker to Bubble Tea key and mouse input and draws it
// with lipgloss. The host places the trigger row on screen and tells the
// model where via SetOrigin; the sheet is drawn over the whole screen.
type Model struct {
	picker *Picker
	keys   KeyMap
	styles *views.Styles
	popup  *views.PopupRenderer

	focus   Mode // trigger with keyboard focus while closed
	originX int
	originY int
	width   int
	height  int
	offset  int // first visible row of the sheet
}

// NewModel wraps p
func NewModel(p *Picker, styles *views.Styles) *Model {
	if styles == nil {
		styles = views.NewStyles()
	}
	return &Model{
		picker: p,
		keys:   DefaultKeyMap(),
		styles: styles,
		popup:  views.NewPopupRenderer(styles),
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Picker returns the wrapped state machine
func (m *Model) Picker() *Picker { return m.picker }

// Keys returns the key bindings
func (m *Model) Keys() KeyMap { return m.keys }

// Focus returns the trigger that has keyboard focus
func (m *Model) Focus() Mode { return m.focus }

// SetSize records the screen size
func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
	m.ensureVisible()
}

// SetOrigin records the screen cell of the trigger row's top-left corner
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// ShortHelp lists the bindings for the current state
func (m *Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp(m.picker.State().Open)
}

// Update handles a message and reports whether the picker consumed it
func (m *Model) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return false
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return false
}

func (m *Model) handleKey(msg tea.KeyMsg) bool {
	p := m.picker

	switch {
	case key.Matches(msg, m.keys.Month):
		m.press(ModeMonth)
		return true
	case key.Matches(msg, m.keys.Year):
		m.press(ModeYear)
		return true
	}

	if !p.State().Open {
		switch {
		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
			m.focus = 1 - m.focus
			return true
		case key.Matches(msg, m.keys.Press):
			m.press(m.focus)
			return true
		}
		return false
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		p.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		p.MoveCursor(1)
	case key.Matches(msg, m.keys.Top):
		p.SetCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		p.SetCursor(len(p.Options()) - 1)
	case key.Matches(msg, m.keys.Select):
		_ = p.SelectCursor()
	case key.Matches(msg, m.keys.Close):
		p.Dismiss(DismissCloseButton)
	default:
		// the sheet is modal; swallow everything else
	}
	m.ensureVisible()
	return true
}

func (m *Model) handleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m.picker.State().Open
	}

	lay := m.layout()
	if !m.picker.State().Open {
		switch {
		case lay.month.contains(msg.X, msg.Y):
			m.press(ModeMonth)
			return true
		case lay.year.contains(msg.X, msg.Y):
			m.press(ModeYear)
			return true
		}
		return false
	}

	switch {
	case msg.Y < lay.sheetTop:
		m.picker.Dismiss(DismissOverlay)
	case msg.Y == lay.headerY && msg.X >= lay.closeX-1:
		m.picker.Dismiss(DismissCloseButton)
	case msg.Y >= lay.rowsTop && msg.Y < lay.rowsTop+lay.visible:
		row := m.offset + msg.Y - lay.rowsTop
		opts := m.picker.Options()
		if row < len(opts) {
			m.picker.SetCursor(row)
			_ = m.picker.Select(opts[row])
		}
	}
	m.ensureVisible()
	return true
}

func (m *Model) press(mode Mode) {
	m.focus = mode
	m.picker.press(mode)
	m.offset = 0
	m.ensureVisible()
}

// visibleRows is how many option rows fit in a sheet of at most half the
// screen, and never more than the whole screen
func (m *Model) visibleRows(total int) int {
	maxSheet := m.height / 2
	if maxSheet < minSheetRows+sheetChrome {
		maxSheet = minSheetRows + sheetChrome
	}
	if maxSheet > m.height {
		maxSheet = m.height
	}
	visible := maxSheet - sheetChrome
	if visible < 1 {
		visible = 1
	}
	if total < visible {
		visible = total
	}
	return visible
}

// ensureVisible scrolls the sheet so the cursor row is on screen
func (m *Model) ensureVisible() {
	total := len(m.picker.Options())
	visible := m.visibleRows(total)
	cursor := m.picker.Cursor()

	if cursor < m.offset {
		m.offset = cursor
	} else if cursor >= m.offset+visible {
		m.offset = cursor - visible + 1
	}
	if maxOffset := total - visible; m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type layout struct {
	month    rect
	year     rect
	sheetTop int
	headerY  int
	closeX   int
	rowsTop  int
	visible  int
}

// layout measures the rendered pieces so mouse hits line up with what is drawn
func (m *Model) layout() layout {
	v := m.picker.Render()
	monthBtn, yearBtn := m.renderTriggers(v)

	var lay layout
	lay.month = rect{m.originX, m.originY, widthOf(monthBtn), heightOf(monthBtn)}
	lay.year = rect{m.originX + lay.month.w + triggerGap, m.originY, widthOf(yearBtn), heightOf(yearBtn)}

	if v.Modal != nil {
		sheetH := heightOf(m.renderSheet(v.Modal))
		// the overlay keeps the bottom lines of a sheet taller than the screen
		cut := 0
		if sheetH > m.height {
			cut = sheetH - m.height
		}
		lay.sheetTop = views.SheetTop(sheetH, m.height)
		lay.headerY = lay.sheetTop + 1 - cut
		lay.closeX = m.width - 3
		lay.rowsTop = lay.sheetTop + 3 - cut
		lay.visible = m.visibleRows(len(v.Modal.Rows))
	}
	return lay
}
