// Package httputiltest provides helpers for fake portal API servers in tests.
package httputiltest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nativebridge/portal-go/pkg/httputil"
)

// Message returns a MessageBody carrying text.
func Message(text string) httputil.MessageBody {
	return httputil.MessageBody{Message: &text}
}

// ResponseJSON response http request with application/json
func ResponseJSON(data interface{}, status int, writer http.ResponseWriter) (err error) {
	writer.Header().Set("Content-type", "application/json")

	d, err := json.Marshal(data)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		d, _ = json.Marshal(Message("ResponseJSON: Failed to response " + err.Error()))
		err = fmt.Errorf("ResponseJSON: Failed to response : %s", err)
		writer.Write(d)
		return
	}

	writer.WriteHeader(status)
	writer.Write(d)
	return
}

// ResponseError response http request with a {message} body
func ResponseError(message string, status int, writer http.ResponseWriter) (err error) {
	return ResponseJSON(Message(message), status, writer)
}
