package api

import (
	"encoding/json"
	"fmt"
)

// RequestError is the structured form of a remote rejection, built from a
// failed Result when a caller wants an error value.
type RequestError struct {
	StatusCode   int
	Body         string
	ErrorDetails map[string]any
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status: %d message: %s", r.StatusCode, r.Body)
}

// Result is the normalized outcome of one dispatched request. Remote and
// transport failures are carried as data; StatusCode is zero when the
// failure happened before an HTTP response existed.
type Result struct {
	Success    bool
	StatusCode int
	Body       []byte
	Error      string
}

// Decode unmarshals the success body into a typed response.
func (r Result) Decode(v any) error {
	if !r.Success {
		return r.Err()
	}
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// Err converts a failed Result into a *RequestError. Returns nil for a
// successful one.
func (r Result) Err() error {
	if r.Success {
		return nil
	}

	var details map[string]any
	if len(r.Body) > 0 {
		_ = json.Unmarshal(r.Body, &details)
	}

	return &RequestError{
		StatusCode:   r.StatusCode,
		Body:         r.Error,
		ErrorDetails: details,
	}
}

func newErrorResult(status int, body []byte) Result {
	return Result{
		Success:    false,
		StatusCode: status,
		Body:       body,
		Error:      string(body),
	}
}
