package components

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/hilom/cmd/hilom/wizard/help"
	"github.com/mrsinham/hilom/internal/booking"
)

var (
	helpPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")).
		Bold(true)

	helpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	helpDetailStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))
)

const minHelpWidth = 24

// HelpPanel explains the focused field and repeats the problem with it, if
// the last submit was refused because of that field.
type HelpPanel struct {
	field    string
	problems map[string]string
	width    int
	height   int
}

// NewHelpPanel creates a new help panel
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{
		width:  60,
		height: 10,
	}
}

// SetField updates which field's help to display
func (h *HelpPanel) SetField(key string) {
	h.field = key
}

// Field returns the key of the field currently described
func (h *HelpPanel) Field() string { return h.field }

// SetError records the fields a refused submit complained about. A nil
// error or one that is not a validation error clears them.
func (h *HelpPanel) SetError(err error) {
	h.problems = nil

	var verr *booking.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	h.problems = make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		h.problems[f.Field] = f.Message
	}
}

// Problem returns the complaint about the focused field, if any.
func (h *HelpPanel) Problem() (string, bool) {
	text, ok := help.Texts[h.field]
	if !ok || text.Field == "" {
		return "", false
	}
	msg, ok := h.problems[text.Field]
	if !ok {
		return "", false
	}
	return text.Field + " " + msg, true
}

// SetSize updates panel dimensions
func (h *HelpPanel) SetSize(width, height int) {
	h.width = max(width, minHelpWidth)
	h.height = height
}

// View renders the help panel
func (h *HelpPanel) View() string {
	style := helpPanelStyle.Width(h.width - 4)

	text, ok := help.Texts[h.field]
	if !ok {
		return style.Render("Move to a field to see help")
	}

	lines := []string{
		helpTitleStyle.Render(text.Title),
		"",
		helpDescStyle.Render(text.Description),
	}
	if text.Details != "" {
		lines = append(lines, "", helpDetailStyle.Render(text.Details))
	}
	if problem, ok := h.Problem(); ok {
		lines = append(lines, "", ErrorStyle.Render("! "+problem))
	}

	return style.Render(strings.Join(lines, "\n"))
}
