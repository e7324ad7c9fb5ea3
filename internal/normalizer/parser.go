package normalizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	httputil "feedsnap/pkg/http"
)

// Item is a raw feed entry as reported by the parsing backend, before
// validation and projection.
type Item struct {
	Title     string
	Link      string
	Published string
}

// Parsed is the outcome of fetching and parsing one feed document. Malformed
// mirrors feedparser-style "bozo" handling: the document violated feed syntax
// but some entries may still have been recovered.
type Parsed struct {
	Malformed bool
	Cause     error
	Items     []Item
}

// Parser fetches and parses one feed document. Transport failures, including
// non-2xx statuses, are returned as *TransportError.
type Parser interface {
	Parse(ctx context.Context, feedURL string) (*Parsed, error)
}

// GofeedParser implements Parser with mmcdole/gofeed over the shared HTTP client.
type GofeedParser struct {
	client *httputil.Client
}

// NewGofeedParser creates a parser backed by the given HTTP client. A nil
// client falls back to the default configuration.
func NewGofeedParser(client *httputil.Client) *GofeedParser {
	if client == nil {
		client = httputil.NewClient(nil)
	}
	return &GofeedParser{client: client}
}

// Parse fetches feedURL and parses the response body as RSS or Atom.
func (p *GofeedParser) Parse(ctx context.Context, feedURL string) (*Parsed, error) {
	resp, err := p.client.GetWithContext(ctx, feedURL)
	if err != nil {
		return nil, &TransportError{URL: feedURL, Err: err}
	}

	if !httputil.Is2xx(resp) {
		resp.Body.Close()
		return nil, &TransportError{URL: feedURL, StatusCode: resp.StatusCode}
	}

	body, err := httputil.ReadResponseBody(resp)
	if err != nil {
		return nil, &TransportError{URL: feedURL, Err: fmt.Errorf("failed to read feed body: %w", err)}
	}

	return parseDocument(string(body)), nil
}

// parseDocument runs a strict parse first, then one recovery attempt with
// illegal XML characters stripped. A document that fails both is malformed
// with zero items, which surfaces as a content error upstream.
func parseDocument(doc string) *Parsed {
	fp := gofeed.NewParser()

	feed, err := fp.ParseString(doc)
	if err == nil {
		return &Parsed{Items: itemsOf(feed)}
	}

	if recovered, retryErr := fp.ParseString(sanitizeXML(doc)); retryErr == nil {
		return &Parsed{Malformed: true, Cause: err, Items: itemsOf(recovered)}
	}

	return &Parsed{Malformed: true, Cause: err}
}

func itemsOf(feed *gofeed.Feed) []Item {
	items := make([]Item, 0, len(feed.Items))
	for _, item := range feed.Items {
		items = append(items, Item{
			Title:     item.Title,
			Link:      item.Link,
			Published: publishedOf(item),
		})
	}
	return items
}

// publishedOf formats the entry's own published date as UTC RFC3339 and falls
// back to the raw string. It never substitutes another timestamp.
func publishedOf(item *gofeed.Item) string {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC().Format("2006-01-02T15:04:05Z")
	}
	return item.Published
}

// sanitizeXML drops characters that XML 1.0 forbids outright, the most common
// recoverable malformation in real-world feeds.
func sanitizeXML(doc string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == 0x9 || r == 0xA || r == 0xD:
			return r
		case r >= 0x20 && r != 0xFFFE && r != 0xFFFF:
			return r
		default:
			return -1
		}
	}, doc)
}
