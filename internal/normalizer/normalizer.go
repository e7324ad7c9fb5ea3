// Package normalizer implements the feed normalization pipeline: fetch one
// RSS/Atom feed, validate its entries, and project them to the minimal
// record shape the frontend consumes.
package normalizer

import (
	"context"
	"log/slog"
	"strings"

	"feedsnap/pkg/feedtypes"
	"feedsnap/pkg/urlutils"
)

// Normalizer turns one feed URL into an ordered list of valid entries.
type Normalizer struct {
	parser Parser
}

// New creates a Normalizer backed by the given parser. A nil parser falls
// back to the gofeed implementation with default HTTP settings.
func New(parser Parser) *Normalizer {
	if parser == nil {
		parser = NewGofeedParser(nil)
	}
	return &Normalizer{parser: parser}
}

// Normalize fetches feedURL and returns its valid entries in source order.
// A failure is either a *TransportError or a *ContentError.
func (n *Normalizer) Normalize(ctx context.Context, feedURL string) ([]feedtypes.Entry, error) {
	slog.Info("Fetching feed", "url", feedURL)

	parsed, err := n.parser.Parse(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	if parsed.Malformed {
		// Malformed does not necessarily mean empty, keep going.
		slog.Warn("Feed is malformed", "url", feedURL, "cause", parsed.Cause)
	}

	if len(parsed.Items) == 0 {
		return nil, &ContentError{Reason: reasonNoEntries}
	}

	entries := make([]feedtypes.Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entry, ok := project(feedURL, item)
		if !ok {
			slog.Warn("Skipping invalid entry", "title", item.Title, "link", item.Link)
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, &ContentError{Reason: reasonNoValidEntries}
	}

	slog.Info("Parsed valid entries", "url", feedURL, "count", len(entries))
	return entries, nil
}

// project validates one raw item and maps it to the output record. Relative
// links are resolved against the feed URL; an entry whose link still isn't
// absolute afterwards is dropped like any other invalid entry.
func project(feedURL string, item Item) (feedtypes.Entry, bool) {
	entry := feedtypes.Entry{
		Title:     strings.TrimSpace(item.Title),
		Link:      strings.TrimSpace(item.Link),
		Published: item.Published,
	}

	if !entry.Valid() {
		return feedtypes.Entry{}, false
	}

	if !urlutils.IsValidURL(entry.Link) {
		resolved, err := urlutils.ResolveURL(feedURL, entry.Link)
		if err != nil || !urlutils.IsValidURL(resolved) {
			return feedtypes.Entry{}, false
		}
		entry.Link = resolved
	}

	return entry, true
}
