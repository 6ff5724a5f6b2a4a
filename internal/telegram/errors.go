package telegram

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an HTTP-level rejection from the Bot API host, carrying the
// status code and raw response body.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// APIError is a logical failure reported by the Bot API: the request was
// transported fine but the response payload has ok=false.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error %d: %s", e.Code, e.Description)
}

// IsTooLarge reports whether err is an HTTP rejection of an oversized
// payload. Locally detected size violations and remote 413 responses must
// converge on the same skip accounting, so the pipeline checks this before
// classifying a call failure.
func IsTooLarge(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == http.StatusRequestEntityTooLarge
}
