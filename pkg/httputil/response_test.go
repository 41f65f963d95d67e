package httputil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		present  bool
		wantText string
	}{
		{name: "message", body: `{"message":"Code expired"}`, present: true, wantText: "Code expired"},
		{name: "empty message", body: `{"message":""}`, present: true, wantText: "fallback"},
		{name: "no message", body: `{"code":"123456"}`, present: false, wantText: "fallback"},
		{name: "plain text", body: `Internal Server Error`, present: false, wantText: "fallback"},
		{name: "empty body", body: ``, present: false, wantText: "fallback"},
		{name: "array", body: `["x"]`, present: false, wantText: "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := DecodeMessage([]byte(tt.body))
			assert.Equal(t, tt.present, msg.Message != nil)
			assert.Equal(t, tt.wantText, msg.Text("fallback"))
		})
	}
}

func TestHTTPStatusError(t *testing.T) {
	err := HTTPStatusError{StatusCode: 410}
	assert.Equal(t, "non-success status: 410", err.Error())

	gone := "gone"
	err = HTTPStatusError{StatusCode: 404, Body: MessageBody{Message: &gone}}
	assert.Equal(t, "non-success status: 404: gone", err.Error())
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(201))
	assert.True(t, IsSuccess(299))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(300))
	assert.False(t, IsSuccess(404))
}

func TestEscapeSegment(t *testing.T) {
	assert.Equal(t, "uploads%2Fjob%201%2Fa.pdf", EscapeSegment("uploads/job 1/a.pdf"))
	assert.Equal(t, "a%3Fb%23c%26d", EscapeSegment("a?b#c&d"))
	assert.Equal(t, "plain-key_1.zip", EscapeSegment("plain-key_1.zip"))
}

func TestDecodeJSON(t *testing.T) {
	var target struct {
		Code string `json:"code"`
	}
	err := DecodeJSON(strings.NewReader(`{"code":"654321","extra":true}`), &target)
	require.NoError(t, err)
	assert.Equal(t, "654321", target.Code)

	assert.NoError(t, DecodeJSON(strings.NewReader(`{}`), nil))
	assert.Error(t, DecodeJSON(strings.NewReader(`not json`), &target))
}
