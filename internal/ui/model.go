package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"expirypicker/internal/config"
	"expirypicker/internal/eventbus"
	"expirypicker/internal/expiration"
	"expirypicker/internal/ui/picker"
	"expirypicker/internal/ui/views"
)

// ReadyMarker is written into the first frame when the ready marker is on
const ReadyMarker = "__READY__"

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

type keyMap struct {
	Help key.Binding
	Quit key.Binding
	Kill key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Kill: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  *expiration.Store
	log    logrus.FieldLogger

	picker       *picker.Model
	styles       *views.Styles
	help         help.Model
	keys         keyMap
	helpRenderer *HelpRenderer

	width       int
	height      int
	status      string
	statusKind  statusKind
	readyMarker bool
	inPagerMode bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around store. Extra picker options are
// passed through, e.g. a fixed clock in tests.
func NewModel(bus eventbus.EventBus, cfg *config.Config, store *expiration.Store, log logrus.FieldLogger, opts ...picker.Option) *Model {
	if log == nil {
		log = logrus.StandardLogger()
	}
	m := &Model{
		bus:          bus,
		config:       cfg,
		store:        store,
		log:          log.WithField("component", "ui"),
		styles:       views.NewStyles(),
		help:         help.New(),
		keys:         newKeyMap(),
		helpRenderer: NewHelpRenderer(),
	}

	opts = append([]picker.Option{picker.WithLogger(log)}, opts...)
	p := picker.New(store, m.callbacks(), opts...)
	m.picker = picker.NewModel(p, m.styles)
	m.picker.SetOrigin(m.styles.Main.GetPaddingLeft(), m.styles.Main.GetPaddingTop()+lipgloss.Height(m.renderHeader()))

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// SetReadyMarker makes every frame carry ReadyMarker for test drivers
func (m *Model) SetReadyMarker(on bool) {
	m.readyMarker = on
}

// Picker exposes the embedded picker
func (m *Model) Picker() *picker.Model {
	return m.picker
}

// Status returns the status line text
func (m *Model) Status() string {
	return m.status
}

// callbacks connects the picker's hooks to the bus and the status line.
// They run inside Update, after the picker has changed state.
func (m *Model) callbacks() picker.Callbacks {
	return picker.Callbacks{
		OnFocus: func() {
			p := m.picker.Picker()
			field := p.State().Mode.Field()
			m.setStatus("Choose a "+string(field), statusInfo)
			if m.bus != nil {
				m.bus.Publish(eventbus.PickerFocusedEvent{PickerID: p.ID(), Field: field})
			}
		},
		OnBlur: func() {
			p := m.picker.Picker()
			if m.bus != nil {
				m.bus.Publish(eventbus.PickerBlurredEvent{PickerID: p.ID(), Field: p.State().Mode.Field()})
			}
		},
		OnMonthChange: func(value string) {
			m.setStatus("Month set to "+value, statusInfo)
		},
		OnYearChange: func(value string) {
			m.setStatus("Year set to "+value, statusInfo)
		},
	}
}

func (m *Model) setStatus(msg string, kind statusKind) {
	m.status = msg
	m.statusKind = kind
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.picker.Update(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Kill) {
			return m, tea.Quit
		}
		if m.inPagerMode {
			return m, nil
		}
		if m.picker.Update(msg) {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.inPagerMode = true
			return m, m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
		}

	case tea.MouseMsg:
		if !m.inPagerMode {
			m.picker.Update(msg)
		}

	case EventMsg:
		m.handleEvent(msg.Event)

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("help pager failed")
			m.setStatus("Help unavailable: "+msg.err.Error(), statusError)
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false
	}

	return m, nil
}

func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch event := e.(type) {
	case eventbus.ExpirationSavedEvent:
		m.setStatus("Saved "+event.Expiration.String(), statusSuccess)
	case eventbus.ExpirationLoadedEvent:
		if !event.Expiration.IsZero() {
			m.setStatus("Loaded "+event.Expiration.String(), statusInfo)
		}
	case eventbus.ErrorEvent:
		text := event.Message
		if event.Err != nil {
			text += ": " + event.Err.Error()
		}
		m.setStatus(text, statusError)
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}

		err := NewHelpOps(program).ShowHelpInPager(helpContent)

		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return helpPagerMsg{err: err}
	}
}

func (m *Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Card expiration"),
		m.styles.Label.Render("Expiration date (MM / YYYY)"),
	)
}

// View renders the model
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	status := m.status
	if status == "" {
		status = "Expiration: " + m.store.Snapshot().String()
	}
	statusStyle := m.styles.Status
	switch m.statusKind {
	case statusSuccess:
		statusStyle = statusStyle.Foreground(m.styles.StatusSuccess.GetForeground())
	case statusError:
		statusStyle = statusStyle.Foreground(m.styles.StatusError.GetForeground())
	}

	bindings := m.picker.ShortHelp()
	if !m.picker.Picker().State().Open {
		bindings = append(bindings, m.keys.Help, m.keys.Quit)
	}

	parts := []string{
		m.renderHeader(),
		m.picker.View(),
		statusStyle.Render(status),
		m.styles.Help.Render(m.help.ShortHelpView(bindings)),
	}
	if m.readyMarker {
		parts = append(parts, ReadyMarker)
	}

	frame := m.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return m.picker.Overlay(frame)
}
