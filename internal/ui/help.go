package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
	"github.com/pkg/errors"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(keys, desc string) string {
		return fmt.Sprintf("  %s%s\n", keyStyle.Render(keys), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("Expiry Picker Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Fields"))
	help.WriteString("\n")
	help.WriteString(line("m", "Choose the month"))
	help.WriteString(line("y", "Choose the year"))
	help.WriteString(line("Tab/Shift+Tab", "Move between month and year"))
	help.WriteString(line("Enter/Space", "Open the focused field"))
	help.WriteString(line("Click", "Open a field"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Option List"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, k/j", "Move the cursor"))
	help.WriteString(line("g/G", "First/last option"))
	help.WriteString(line("Enter", "Choose the option under the cursor"))
	help.WriteString(line("Esc, x, q", "Close without choosing"))
	help.WriteString(line("Click", "Choose an option, ✕ closes, outside dismisses"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("?", "Show this help"))
	help.WriteString(strings.TrimRight(line("q, Ctrl+C", "Quit"), "\n"))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errors.New("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return errors.Wrap(err, "release terminal")
	}

	defer func() {
		// give ov time to restore the screen before we take it back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return errors.Wrap(err, "create pager")
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
