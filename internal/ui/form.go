package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderForm renders the input box used to store new data.
func (m Model) renderForm() string {
	focused := m.currentView == ViewRecords && m.focus == focusForm
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Faint)).
		Background(lipgloss.Color(bgColor)).
		Render("  enter: Store Data")

	innerWidth := max(0, m.width-2)
	input := m.input.View()
	if lipgloss.Width(input)+lipgloss.Width(hint) <= innerWidth {
		input += hint
	}
	return m.renderTitledBox("New Data", input, m.width, 3, focused)
}

// renderMessage renders the success or error line under the form. Both can
// not be set at once; an empty line keeps the layout stable.
func (m Model) renderMessage() string {
	styles := m.theme.Styles()
	line := lipgloss.NewStyle().Width(m.width).MaxWidth(m.width)

	switch {
	case m.snapshot.ErrorMessage != "":
		return line.Render(styles.DangerText.Render(" " + m.snapshot.ErrorMessage))
	case m.snapshot.SuccessMessage != "":
		return line.Render(styles.SuccessText.Render(" " + m.snapshot.SuccessMessage))
	default:
		return line.Render("")
	}
}
