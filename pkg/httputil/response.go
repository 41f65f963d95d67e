package httputil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// MessageBody is the {message?} payload the portal API returns on most calls.
// A nil Message means the field was absent or the body was not JSON.
type MessageBody struct {
	Message *string `json:"message,omitempty"`
}

// Text returns the server message, or fallback when it is absent or empty.
func (m MessageBody) Text(fallback string) string {
	if m.Message == nil || *m.Message == "" {
		return fallback
	}
	return *m.Message
}

// DecodeMessage parses body leniently. Anything that is not a JSON object
// yields an empty MessageBody.
func DecodeMessage(body []byte) MessageBody {
	var msg MessageBody
	if err := DecodeJSON(bytes.NewReader(body), &msg); err != nil {
		return MessageBody{}
	}
	return msg
}

// HTTPStatusError represents a non-2xx HTTP response.
type HTTPStatusError struct {
	StatusCode int
	Body       MessageBody
}

func (err HTTPStatusError) Error() string {
	if err.Body.Message != nil && *err.Body.Message != "" {
		return fmt.Sprintf("non-success status: %d: %s", err.StatusCode, *err.Body.Message)
	}
	return fmt.Sprintf("non-success status: %d", err.StatusCode)
}

// IsSuccess reports whether code is a 2xx status.
func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// EscapeSegment percent-encodes s for use as a single URL path segment.
// Slashes, spaces and reserved characters are all escaped.
func EscapeSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// DecodeJSON decodes a JSON document into target. Unknown fields are ignored.
func DecodeJSON(reader io.Reader, target interface{}) error {
	if target == nil {
		return nil
	}

	return json.NewDecoder(reader).Decode(target)
}
