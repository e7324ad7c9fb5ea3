package preview

import (
	"strings"
	"testing"

	"feedsnap/pkg/feedtypes"
)

func TestFormatCompactListItemTruncatesTitle(t *testing.T) {
	entry := feedtypes.Entry{
		Title:     strings.Repeat("long title ", 20),
		Link:      "https://example.test/post",
		Published: "2024-01-17T10:00:00Z",
	}

	line := FormatCompactListItem(0, entry)

	if !strings.HasPrefix(line, " 1. 2024-01-17T10:00:00Z") {
		t.Errorf("line = %q, expected index and published prefix", line)
	}
	if !strings.HasSuffix(line, "...") {
		t.Errorf("line = %q, expected truncated title", line)
	}
}

func TestFormatDetailedItemWithoutPublished(t *testing.T) {
	entry := feedtypes.Entry{Title: "Post", Link: "https://example.test/post"}

	detail := FormatDetailedItem(entry)

	if !strings.Contains(detail, "Published: (not provided by feed)") {
		t.Errorf("detail = %q, expected placeholder for missing date", detail)
	}
}

func TestFormatJSONItemMatchesWriterOutput(t *testing.T) {
	entry := feedtypes.Entry{Title: "Post", Link: "https://example.test/post", Published: ""}

	out := FormatJSONItem(entry)

	for _, key := range []string{`"title"`, `"link"`, `"published"`} {
		if !strings.Contains(out, key) {
			t.Errorf("JSON view missing %s: %s", key, out)
		}
	}
}

func TestFormatTimeAgoUnparseable(t *testing.T) {
	if got := formatTimeAgo("Wed, 17 Jan 2024 10:00:00 GMT"); got != "unparsed date" {
		t.Errorf("formatTimeAgo() = %q", got)
	}
}
