package picker

import "time"

const (
	monthPlaceholder = "MM"
	yearPlaceholder  = "YYYY"
	closeGlyph       = "✕"
)

// Row is one option in the open list
type Row struct {
	Value    string
	Selected bool // equals the context's stored value
	Cursor   bool
}

// ModalView is the open option list
type ModalView struct {
	Mode  Mode
	Title string
	Close string
	Rows  []Row
}

// View is everything the widget draws for one frame
type View struct {
	MonthLabel string
	YearLabel  string
	Active     Mode
	Modal      *ModalView // nil while closed
}

// Render is a pure function of the widget state, the context's values and
// the time. Only the list for state.Mode is ever produced.
func Render(state State, cursor int, month, year string, now time.Time) View {
	v := View{
		MonthLabel: month,
		YearLabel:  year,
		Active:     state.Mode,
	}
	if v.MonthLabel == "" {
		v.MonthLabel = monthPlaceholder
	}
	if v.YearLabel == "" {
		v.YearLabel = yearPlaceholder
	}
	if !state.Open {
		return v
	}

	var title, current string
	switch state.Mode {
	case ModeMonth:
		title, current = "Select Month", month
	case ModeYear:
		title, current = "Select Year", year
	}

	options := Options(state.Mode, now)
	rows := make([]Row, len(options))
	for i, value := range options {
		rows[i] = Row{
			Value:    value,
			Selected: value == current,
			Cursor:   i == cursor,
		}
	}

	v.Modal = &ModalView{
		Mode:  state.Mode,
		Title: title,
		Close: closeGlyph,
		Rows:  rows,
	}
	return v
}

// SelectedRow returns the index of the highlighted row, or -1
func (mv *ModalView) SelectedRow() int {
	if mv == nil {
		return -1
	}
	for i, r := range mv.Rows {
		if r.Selected {
			return i
		}
	}
	return -1
}
