package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style

	// Picker triggers
	Trigger        lipgloss.Style
	TriggerFocused lipgloss.Style

	// Picker sheet
	Sheet       lipgloss.Style
	SheetTitle  lipgloss.Style
	SheetRule   lipgloss.Style
	Close       lipgloss.Style
	Option      lipgloss.Style
	OptionPick  lipgloss.Style // stored value
	OptionFocus lipgloss.Style // keyboard cursor
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green

		Trigger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 2),
		TriggerFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Bold(true).
			Padding(0, 2),

		Sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SheetTitle:  lipgloss.NewStyle().Bold(true),
		SheetRule:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Close:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Option:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OptionPick:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		OptionFocus: lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}
