package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a string by removing characters from the middle,
// preserving both the beginning and end.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

// singleLine collapses newlines and tabs so record text cannot break the grid.
func singleLine(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// wrapLines breaks value into at most maxLines lines of width runes. The last
// line is truncated with an ellipsis when text remains.
func wrapLines(value string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	runes := []rune(singleLine(value))
	var lines []string
	for len(runes) > 0 && len(lines) < maxLines {
		n := min(width, len(runes))
		lines = append(lines, string(runes[:n]))
		runes = runes[n:]
	}
	if len(runes) > 0 && len(lines) > 0 {
		last := []rune(lines[len(lines)-1])
		if len(last) >= width && width > 1 {
			last = last[:width-1]
		}
		lines[len(lines)-1] = string(last) + "…"
	}
	return lines
}
