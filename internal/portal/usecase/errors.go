package usecase

import (
	"context"
	"errors"

	"github.com/nativebridge/portal-go/pkg/httputil"
)

// User-facing messages.
const (
	MsgEmptyCode          = "Please enter your 6-digit submission code."
	MsgInvalidCode        = "Invalid or expired code."
	MsgServerUnreachable  = "Could not reach the server. Please try again."
	MsgMissingSession     = "Missing session. Please re-enter your code."
	MsgEmptyDraft         = "Please select a file or enter a URL."
	MsgSubmissionFailed   = "Submission failed. Please try again."
	MsgSubmitUnreachable  = "Could not submit. Please try again."
	MsgSubmissionReceived = "Submission received. Your client will review it soon."
	MsgMissingJobID       = "Missing job ID."
	MsgJobUnavailable     = "Job not found or unavailable."
	MsgJobLoadFailed      = "Unable to load job."
	MsgFileUnavailable    = "This file is unavailable for secure download."
	MsgDownloadFailed     = "Unable to download file."
	MsgJobNotLoaded       = "Job is not loaded yet."
	MsgCanceled           = "Request cancelled."
)

// ErrInFlight is returned when a controller is already running a request.
var ErrInFlight = errors.New("a request is already in flight")

// ValidationError is a client-side precondition failure. No request was sent.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// RemoteError is a non-2xx answer from the portal API.
type RemoteError struct {
	Status  int
	Message string
}

func (e RemoteError) Error() string {
	return e.Message
}

// TransportError means the request did not complete or its response could
// not be read.
type TransportError struct {
	Message string
	Err     error
}

func (e TransportError) Error() string {
	return e.Message
}

func (e TransportError) Unwrap() error {
	return e.Err
}

// StateError means the operation is not legal from the current state.
type StateError struct {
	Message string
}

func (e StateError) Error() string {
	return e.Message
}

// classify turns an error from PortalAPI into a RemoteError carrying the
// server message (or remoteFallback), or a TransportError. A cancelled
// context is reported as MsgCanceled rather than as an unreachable server.
func classify(err error, remoteFallback, transportMessage string) error {
	if errors.Is(err, context.Canceled) {
		return TransportError{Message: MsgCanceled, Err: err}
	}
	var statusErr httputil.HTTPStatusError
	if errors.As(err, &statusErr) {
		return RemoteError{
			Status:  statusErr.StatusCode,
			Message: statusErr.Body.Text(remoteFallback),
		}
	}
	return TransportError{Message: transportMessage, Err: err}
}

// classifyFixed is classify for operations whose messages never come from
// the server.
func classifyFixed(err error, remoteMessage, transportMessage string) error {
	if errors.Is(err, context.Canceled) {
		return TransportError{Message: MsgCanceled, Err: err}
	}
	var statusErr httputil.HTTPStatusError
	if errors.As(err, &statusErr) {
		return RemoteError{Status: statusErr.StatusCode, Message: remoteMessage}
	}
	return TransportError{Message: transportMessage, Err: err}
}
