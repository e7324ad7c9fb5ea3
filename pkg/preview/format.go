// Package preview provides interactive feed entry preview functionality using Bubble Tea TUI.
package preview

import (
	"fmt"
	"strings"
	"time"

	"feedsnap/pkg/feedtypes"
	"feedsnap/pkg/jsonfeed"
)

// FormatCompactListItem formats a single entry in compact list format
// Example: " 1. 2024-01-17T10:00:00Z  Post Title"
func FormatCompactListItem(index int, entry feedtypes.Entry) string {
	published := entry.Published
	if published == "" {
		published = strings.Repeat(" ", 20)
	}

	// Truncate title if too long (120 char width total)
	const maxTitleLength = 70
	title := entry.Title
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength-3] + "..."
	}

	return fmt.Sprintf("%2d. %s  %s", index+1, published, title)
}

// FormatDetailedItem formats a single entry with all fields
func FormatDetailedItem(entry feedtypes.Entry) string {
	var b strings.Builder

	b.WriteString("═══════════════════════════════════════════════════════════════════════\n")
	b.WriteString(fmt.Sprintf("Title: %s\n", entry.Title))
	b.WriteString(fmt.Sprintf("Link: %s\n", entry.Link))

	if entry.Published != "" {
		b.WriteString(fmt.Sprintf("Published: %s (%s)\n", entry.Published, formatTimeAgo(entry.Published)))
	} else {
		b.WriteString("Published: (not provided by feed)\n")
	}

	b.WriteString("═══════════════════════════════════════════════════════════════════════\n")

	return b.String()
}

// FormatJSONItem renders one entry exactly as the output writer would
func FormatJSONItem(entry feedtypes.Entry) string {
	data, err := jsonfeed.Marshal(entry)
	if err != nil {
		return fmt.Sprintf("Error rendering entry: %s", err)
	}
	return string(data)
}

// formatTimeAgo formats a published string as a human-readable "X ago" string.
// Unparseable values are reported as-is.
func formatTimeAgo(published string) string {
	t, err := time.Parse(time.RFC3339, published)
	if err != nil {
		return "unparsed date"
	}

	duration := time.Since(t)

	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		mins := int(duration.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case duration < 24*time.Hour:
		hours := int(duration.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case duration < 7*24*time.Hour:
		days := int(duration.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("2006-01-02")
	}
}
