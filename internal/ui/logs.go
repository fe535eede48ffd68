package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stash/internal/logtail"
)

// readLogsCmd tails the diagnostics log file.
func (m Model) readLogsCmd() tea.Cmd {
	path := m.logPath()
	return func() tea.Msg {
		if path == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Read(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (m Model) logPath() string {
	if m.config == nil {
		return ""
	}
	return m.config.LogFile
}

// resizeLogViewport fits the viewport to the window: the box takes every row
// below the header and command bar, minus its borders.
func (m *Model) resizeLogViewport() {
	width := max(1, m.width-4)
	height := max(1, m.height-4)
	if m.logViewport.Width == 0 {
		m.logViewport = viewport.New(width, height)
	}
	m.logViewport.Width = width
	m.logViewport.Height = height
}

// updateLogViewport renders the current lines into the viewport. The view
// stays pinned to the bottom unless the user scrolled up.
func (m *Model) updateLogViewport() {
	if m.logViewport.Width == 0 {
		m.resizeLogViewport()
	}
	follow := m.logViewport.AtBottom() || m.logViewport.TotalLineCount() == 0

	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.FocusBg)
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	var content string
	switch {
	case m.logErr != nil:
		content = bg.Render(fmt.Sprintf("Unable to read %s: %v", m.logPath(), m.logErr), styles.DangerText)
	case len(m.logLines) == 0:
		content = bg.Render("No diagnostics yet", styles.MutedText)
	default:
		rendered := make([]string, 0, len(m.logLines))
		for _, line := range m.logLines {
			rendered = append(rendered, bg.Render(truncate(line, m.logViewport.Width), levelStyle(logtail.Classify(line), styles)))
		}
		content = strings.Join(rendered, "\n")
	}
	m.logViewport.SetContent(content)

	if follow {
		m.logViewport.GotoBottom()
	}
}

// levelStyle returns the style for a log level.
func levelStyle(level logtail.Level, styles Styles) lipgloss.Style {
	switch level {
	case logtail.LevelError:
		return styles.DangerText
	case logtail.LevelWarn:
		return styles.WarningText
	default:
		return styles.Text
	}
}

// renderLogs renders the log view.
func (m Model) renderLogs() string {
	title := "Diagnostics Log"
	if path := m.logPath(); path != "" {
		title += " " + truncateMiddle(path, 40)
	}
	return m.renderTitledBox(title, m.logViewport.View(), m.width, m.height-2, true)
}
