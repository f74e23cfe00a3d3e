package picker

import (
	"fmt"

	"expirypicker/internal/domain"
)

// Mode selects which list the modal shows and which field a selection writes.
type Mode int

const (
	ModeMonth Mode = iota
	ModeYear
)

func (m Mode) String() string {
	switch m {
	case ModeMonth:
		return "month"
	case ModeYear:
		return "year"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Field maps the mode to the expiration field it edits
func (m Mode) Field() domain.Field {
	switch m {
	case ModeYear:
		return domain.FieldYear
	default:
		return domain.FieldMonth
	}
}

// State is the widget's transient UI state. Open is only ever set by a
// trigger press, which sets Mode in the same step.
type State struct {
	Mode Mode
	Open bool
}

// DismissReason names the path that closed the modal
type DismissReason int

const (
	DismissOverlay DismissReason = iota
	DismissCloseButton
	DismissSelection
)

func (r DismissReason) String() string {
	switch r {
	case DismissOverlay:
		return "overlay"
	case DismissCloseButton:
		return "close_button"
	case DismissSelection:
		return "selection"
	default:
		return fmt.Sprintf("DismissReason(%d)", int(r))
	}
}
