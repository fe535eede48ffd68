package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.HasRecords {
		return m.renderConnectingHeader(styles, bg)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(m.buildStatusContent(styles, bg))
}

// renderConnectingHeader shows the state before the first successful list.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)

	if m.snapshot.LastError != nil {
		last := "soon"
		if !m.snapshot.LastUpdated.IsZero() {
			last = m.snapshot.LastUpdated.Format("15:04:05")
		}
		parts := []string{
			bg.Render("stash", styles.Logo),
			bg.Render("SERVICE "+classifyConnectionError(m.snapshot.LastError), styles.DangerText.Bold(true)),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText),
		}
		if m.config != nil && m.config.LogFile != "" {
			parts = append(parts,
				bg.Render("logs", styles.FaintText)+bg.Space()+
					bg.Render(truncateMiddle(m.config.LogFile, 50), styles.MutedText))
		}
		return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render("stash", styles.Logo) + sep +
			bg.Render("Connecting to "+truncateMiddle(m.baseURL, 40)+"...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < 80
	sep := bg.Spaces(2)

	parts := []string{bg.Render("stash", styles.Logo)}

	if m.snapshot.IsOffline() {
		parts = append(parts, styles.Badge.Render("OFFLINE"))
	} else {
		parts = append(parts, bg.Render("● ON", styles.SuccessText))
	}

	if !compact {
		parts = append(parts, bg.Render(truncateMiddle(m.baseURL, 32), styles.MutedText))
	}

	parts = append(parts,
		bg.Render("Records:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Records)), styles.Text),
	)

	if m.inFlight > 0 {
		parts = append(parts, bg.Render("working…", styles.InfoText))
	}

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	if !compact && m.pollEvery > 0 {
		parts = append(parts, bg.Render("every "+m.pollEvery.String(), styles.FaintText))
	}

	if m.snapshot.LastError != nil {
		maxErr := 60
		if compact {
			maxErr = 30
		}
		parts = append(parts,
			bg.Render(classifyConnectionError(m.snapshot.LastError), styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.snapshot.LastError.Error(), maxErr), styles.DangerText),
		)
	}

	return strings.Join(parts, sep)
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	last := m.snapshot.LastUpdated
	if last.IsZero() {
		return ""
	}

	since := time.Since(last)
	out := last.Format("15:04:05")
	switch {
	case since < time.Minute:
		out += " (now)"
	case since < time.Hour:
		out += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		out += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}
	return out
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "returned status"):
		return "BAD STATUS"
	case strings.Contains(msg, "decode response"):
		return "BAD RESPONSE"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the key hints for the current view and focus.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.currentView == ViewLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"esc", "Records"},
			{"?", "More"},
		}
	case m.focus == focusForm:
		commands = []cmd{
			{"enter", "Store Data"},
			{"tab", "Records"},
			{"ctrl+c", "Quit"},
		}
	default:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"d", "Delete"},
			{"r", "Refresh"},
			{"c", m.columnsLabel()},
			{"l", "Logs"},
			{"tab", "Form"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// columnsLabel describes the current column preference.
func (m Model) columnsLabel() string {
	if m.columns == 0 {
		return "Cols auto"
	}
	return fmt.Sprintf("Cols %d", m.columns)
}
