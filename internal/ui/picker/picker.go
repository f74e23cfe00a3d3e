// Package picker implements the expiration month/year picker: two trigger
// buttons that open a modal list of options. Values live in an injected
// expiration.Context; the picker only holds which list is open.
//
// Picker is the framework-independent state machine and Render derives
// everything drawn on screen from it. Model adapts both to Bubble Tea.
package picker

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"expirypicker/internal/expiration"
)

var (
	// ErrInvalidMode is returned when a selection arrives for a mode other
	// than month or year. Nothing is written and the modal stays open.
	ErrInvalidMode = errors.New("invalid selection mode")
	// ErrNotOpen is returned when a selection arrives while the modal is closed
	ErrNotOpen = errors.New("picker is not open")
	// ErrNoOption is returned when the cursor is not on any option
	ErrNoOption = errors.New("no option under cursor")
)

// Callbacks are optional hooks for the containing view. Nil fields are skipped.
type Callbacks struct {
	OnFocus       func()
	OnBlur        func()
	OnMonthChange func(value string)
	OnYearChange  func(value string)
}

// Clock returns the current time; years are derived from it on each render.
type Clock func() time.Time

// Option configures a Picker
type Option func(*Picker)

// WithClock replaces time.Now
func WithClock(clock Clock) Option {
	return func(p *Picker) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Picker) {
		if log != nil {
			p.log = log
		}
	}
}

// WithID overrides the generated instance id
func WithID(id string) Option {
	return func(p *Picker) {
		if id != "" {
			p.id = id
		}
	}
}

// Picker is the widget state machine
type Picker struct {
	id     string
	ctx    expiration.Context
	cb     Callbacks
	clock  Clock
	log    logrus.FieldLogger
	state  State
	cursor int
}

// New creates a closed picker in month mode
func New(ctx expiration.Context, cb Callbacks, opts ...Option) *Picker {
	p := &Picker{
		id:    uuid.NewString(),
		ctx:   ctx,
		cb:    cb,
		clock: time.Now,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.WithFields(logrus.Fields{"component": "picker", "picker_id": p.id})
	return p
}

// ID identifies this picker instance in logs and events
func (p *Picker) ID() string { return p.id }

// State returns a copy of the current UI state
func (p *Picker) State() State { return p.state }

// Cursor returns the keyboard cursor row in the open list
func (p *Picker) Cursor() int { return p.cursor }

// PressMonth opens the month list
func (p *Picker) PressMonth() { p.press(ModeMonth) }

// PressYear opens the year list
func (p *Picker) PressYear() { p.press(ModeYear) }

// press switches to mode and opens the list. OnFocus runs after the state
// change and before the next frame is drawn.
func (p *Picker) press(mode Mode) {
	p.state = State{Mode: mode, Open: true}
	p.cursor = p.selectedIndex()
	p.log.WithField("mode", mode).Debug("picker opened")
	if p.cb.OnFocus != nil {
		p.cb.OnFocus()
	}
}

// Dismiss closes the modal. It fires OnBlur once per open; dismissing a
// closed picker does nothing.
func (p *Picker) Dismiss(reason DismissReason) {
	if !p.state.Open {
		return
	}
	p.state.Open = false
	p.log.WithFields(logrus.Fields{"mode": p.state.Mode, "reason": reason}).Debug("picker closed")
	if p.cb.OnBlur != nil {
		p.cb.OnBlur()
	}
}

// Select writes value through the context for the active mode, fires the
// matching change callback, then closes the modal.
func (p *Picker) Select(value string) error {
	if !p.state.Open {
		return ErrNotOpen
	}

	switch p.state.Mode {
	case ModeMonth:
		p.ctx.SetMonth(value)
		if p.cb.OnMonthChange != nil {
			p.cb.OnMonthChange(value)
		}
	case ModeYear:
		p.ctx.SetYear(value)
		if p.cb.OnYearChange != nil {
			p.cb.OnYearChange(value)
		}
	default:
		p.log.WithField("mode", p.state.Mode).Error("invalid selection")
		return errors.Wrapf(ErrInvalidMode, "mode %s", p.state.Mode)
	}

	p.log.WithFields(logrus.Fields{"mode": p.state.Mode, "value": value}).Debug("value selected")
	p.Dismiss(DismissSelection)
	return nil
}

// SelectCursor selects the row under the keyboard cursor
func (p *Picker) SelectCursor() error {
	if !p.state.Open {
		return ErrNotOpen
	}
	opts := p.Options()
	if p.cursor < 0 || p.cursor >= len(opts) {
		return errors.Wrapf(ErrNoOption, "cursor %d of %d", p.cursor, len(opts))
	}
	return p.Select(opts[p.cursor])
}

// MoveCursor moves the keyboard cursor by delta rows, clamped to the list
func (p *Picker) MoveCursor(delta int) {
	p.SetCursor(p.cursor + delta)
}

// SetCursor places the keyboard cursor, clamped to the list
func (p *Picker) SetCursor(row int) {
	if !p.state.Open {
		return
	}
	n := len(p.Options())
	switch {
	case n == 0:
		row = 0
	case row < 0:
		row = 0
	case row >= n:
		row = n - 1
	}
	p.cursor = row
}

// Options returns the list for the active mode at the current time
func (p *Picker) Options() []string {
	return Options(p.state.Mode, p.clock())
}

// Render derives the current view from state and the context's values
func (p *Picker) Render() View {
	return Render(p.state, p.cursor, p.ctx.Month(), p.ctx.Year(), p.clock())
}

// selectedIndex finds the stored value in the active list, or 0
func (p *Picker) selectedIndex() int {
	current := p.current()
	for i, v := range p.Options() {
		if v == current {
			return i
		}
	}
	return 0
}

func (p *Picker) current() string {
	switch p.state.Mode {
	case ModeMonth:
		return p.ctx.Month()
	case ModeYear:
		return p.ctx.Year()
	default:
		return ""
	}
}
