package http

import (
	"io"
	"log/slog"
	"net/http"
)

// ReadResponseBody reads and closes HTTP response body
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Error("Failed to close response body", "error", closeErr)
		}
	}()
	return io.ReadAll(resp.Body)
}

// Is2xx reports whether the response carries a successful status code.
func Is2xx(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
