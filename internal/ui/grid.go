package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stash/internal/records"
)

// gridColumns returns how many cards fit per row. A positive preference wins
// as long as each card keeps a usable width.
func gridColumns(innerWidth, pref int) int {
	if innerWidth <= 0 {
		return 1
	}
	fit := max(1, innerWidth/MinCardWidth)
	if pref > 0 {
		if innerWidth/pref >= 8 {
			return pref
		}
		return fit
	}
	return fit
}

// visibleRows returns the [start, end) row window of size fitRows that keeps
// selectedRow in view, scrolling only as far as needed.
func visibleRows(selectedRow, totalRows, fitRows int) (int, int) {
	if fitRows <= 0 || totalRows <= 0 {
		return 0, 0
	}
	if totalRows <= fitRows {
		return 0, totalRows
	}
	start := 0
	if selectedRow >= fitRows {
		start = selectedRow - fitRows + 1
	}
	return start, start + fitRows
}

// gridInnerWidth is the width available to cards inside the grid box.
func (m Model) gridInnerWidth() int {
	return max(0, m.width-2)
}

// gridHeight is the height of the grid box including its borders.
func (m Model) gridHeight() int {
	return max(3, m.height-chromeHeight)
}

// selectedRecord returns the highlighted record, if any.
func (m Model) selectedRecord() *records.Record {
	if m.selected < 0 || m.selected >= len(m.snapshot.Records) {
		return nil
	}
	rec := m.snapshot.Records[m.selected]
	return &rec
}

// clampSelection keeps the highlight on the same record id across refreshes
// and clamps it when that record is gone.
func (m *Model) clampSelection() {
	list := m.snapshot.Records
	if len(list) == 0 {
		m.selected = 0
		m.selectedID = ""
		return
	}
	if m.selectedID != "" {
		for i, rec := range list {
			if rec.ID == m.selectedID {
				m.selected = i
				return
			}
		}
	}
	if m.selected >= len(list) {
		m.selected = len(list) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.selectedID = list[m.selected].ID
}

// moveSelection applies a navigation key to the grid highlight.
func (m *Model) moveSelection(msg tea.KeyMsg) {
	count := len(m.snapshot.Records)
	if count == 0 {
		return
	}
	cols := gridColumns(m.gridInnerWidth(), m.columns)

	next := m.selected
	switch {
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Right):
		next++
	case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Left):
		next--
	case key.Matches(msg, m.keys.Down):
		next += cols
	case key.Matches(msg, m.keys.Up):
		next -= cols
	case key.Matches(msg, m.keys.Top):
		next = 0
	case key.Matches(msg, m.keys.Bottom):
		next = count - 1
	default:
		return
	}
	if next < 0 || next >= count {
		return
	}
	m.selected = next
	m.selectedID = m.snapshot.Records[next].ID
}

// renderGrid renders the records as cards in service order.
func (m Model) renderGrid() string {
	focused := m.currentView == ViewRecords && m.focus == focusGrid
	height := m.gridHeight()
	title := fmt.Sprintf("Stored Data (%d)", len(m.snapshot.Records))

	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}

	var content string
	switch {
	case len(m.snapshot.Records) == 0 && !m.snapshot.HasRecords:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Background(lipgloss.Color(bgColor)).
			Render("Waiting for the first refresh...")
	case len(m.snapshot.Records) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Background(lipgloss.Color(bgColor)).
			Render("No records stored")
	default:
		content = m.renderCards(m.gridInnerWidth(), height-2, bgColor, focused)
	}
	return m.renderTitledBox(title, content, m.width, height, focused)
}

// renderCards lays out the visible rows of cards.
func (m Model) renderCards(innerWidth, innerHeight int, bgColor string, focused bool) string {
	list := m.snapshot.Records
	cols := gridColumns(innerWidth, m.columns)
	cardWidth := innerWidth / cols
	totalRows := (len(list) + cols - 1) / cols
	fitRows := max(1, innerHeight/cardHeight)

	start, end := visibleRows(m.selected/cols, totalRows, fitRows)

	rows := make([]string, 0, end-start)
	for r := start; r < end; r++ {
		cards := make([]string, 0, cols)
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if idx >= len(list) {
				break
			}
			cards = append(cards, m.renderCard(list[idx], cardWidth, bgColor, focused && idx == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// renderCard renders one record: wrapped text and its id.
func (m Model) renderCard(rec records.Record, width int, bgColor string, selected bool) string {
	inner := max(1, width-4) // borders and padding
	borderColor := m.theme.Border
	cardBg := bgColor
	textColor := m.theme.Text
	if selected {
		borderColor = m.theme.BorderFocus
		cardBg = m.theme.SelectionBg
		textColor = m.theme.SelectionText
	}

	lines := wrapLines(rec.Data, inner, CardTextLines)
	for len(lines) < CardTextLines {
		lines = append(lines, "")
	}
	idLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Faint)).
		Background(lipgloss.Color(cardBg)).
		Render(truncate("#"+rec.ID.String(), inner))

	text := lipgloss.NewStyle().
		Foreground(lipgloss.Color(textColor)).
		Background(lipgloss.Color(cardBg)).
		Width(inner).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderBackground(lipgloss.Color(bgColor)).
		Background(lipgloss.Color(cardBg)).
		Padding(0, 1).
		Width(inner + 2).
		Render(text + "\n" + idLine)
}

// renderTitledBox renders a box with the title embedded in the top border.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderColor := lipgloss.Color(borderColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(0, width-2)
	title = truncate(title, max(0, innerWidth-4))
	titleLen := lipgloss.Width(title)
	leftPad := max(0, (innerWidth-titleLen-2)/2)
	rightPad := max(0, innerWidth-titleLen-2-leftPad)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(bgColor)
	contentLines := strings.Split(content, "\n")
	boxHeight := max(0, height-2)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
