package providers

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrProviderUnavailable indicates a provider is not configured or reachable.
var ErrProviderUnavailable = errors.New("feed provider unavailable")

// HTTPError captures a non-2xx response from the upstream feed.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("feed request failed: %d %s (%s)", e.StatusCode, e.Status, e.URL)
	}
	return fmt.Sprintf("feed request failed: status %d (%s)", e.StatusCode, e.URL)
}

// AsHTTPError attempts to unwrap an error into an HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// IsNotFound reports whether the error is an upstream 404. The schedule path
// treats 404 as "no games", never as a failure.
func IsNotFound(err error) bool {
	httpErr, ok := AsHTTPError(err)
	return ok && httpErr.StatusCode == http.StatusNotFound
}
