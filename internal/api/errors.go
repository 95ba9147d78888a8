package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse wraps a 2xx response whose body is not the expected
// JSON envelope.
var ErrMalformedResponse = errors.New("malformed API response")

// Error is a non-2xx API response.
type Error struct {
	StatusCode int
	Status     string
	Messages   []string
}

// Error formats as "<statusCode>: <first message>", falling back to the HTTP
// status text when the body carried no message.
func (e *Error) Error() string {
	msg := e.Status
	if len(e.Messages) > 0 && e.Messages[0] != "" {
		msg = e.Messages[0]
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, msg)
}

// StatusCode returns the HTTP status of an *Error in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }

// errorBody is the failure envelope.
type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Errors     []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (b errorBody) toError(resp *http.Response) *Error {
	e := &Error{StatusCode: b.StatusCode, Status: http.StatusText(resp.StatusCode)}
	if e.StatusCode == 0 {
		e.StatusCode = resp.StatusCode
	}
	for _, m := range b.Errors {
		e.Messages = append(e.Messages, m.Message)
	}
	return e
}
