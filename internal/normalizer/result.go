package normalizer

import "fmt"

// TransportError reports a failure to retrieve the feed document: DNS or
// connect failures, timeouts, or a non-2xx HTTP status. The status code is
// preserved for diagnostics when one was received.
type TransportError struct {
	URL        string
	StatusCode int // 0 when the request never produced a response
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("feed request to %s failed with HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("feed request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ContentError reports a feed that was retrieved but yielded nothing usable.
type ContentError struct {
	Reason string
}

func (e *ContentError) Error() string { return e.Reason }

// The two content-error cases share one type and exit behavior but keep
// distinguishable messages.
const (
	reasonNoEntries      = "no entries found in feed"
	reasonNoValidEntries = "no valid entries found (missing title or link)"
)
