package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/imroc/req"
	"github.com/sirupsen/logrus"

	"github.com/nativebridge/portal-go/internal/config"
	"github.com/nativebridge/portal-go/internal/logger"
	"github.com/nativebridge/portal-go/internal/portal/entity"
	"github.com/nativebridge/portal-go/pkg/httputil"
)

// RequestIDHeader carries a per-request UUID so client and server logs can be
// matched.
const RequestIDHeader = "X-Request-ID"

// APIClient implements usecase.PortalAPI over HTTP.
type APIClient struct {
	baseURL string
	req     *req.Req
}

// NewAPIClient creates a client for the configured base endpoint.
func NewAPIClient(cfg config.APIConfig) *APIClient {
	r := req.New()
	r.SetClient(&http.Client{Timeout: cfg.Timeout()})
	return &APIClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		req:     r,
	}
}

// do sends a request and turns non-2xx answers into httputil.HTTPStatusError.
func (c *APIClient) do(ctx context.Context, method, path string, vs ...interface{}) (*req.Resp, error) {
	requestID := uuid.New().String()
	log := logger.Logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     method,
		"path":       path,
	})

	header := req.Header{
		"Accept":        "application/json",
		RequestIDHeader: requestID,
	}
	args := append([]interface{}{header, ctx}, vs...)

	resp, err := c.req.Do(method, c.baseURL+path, args...)
	if err != nil {
		log.WithError(err).Warn("[APIClient.do] request failed")
		return nil, err
	}

	status := resp.Response().StatusCode
	log.WithField("status", status).Debug("[APIClient.do] request completed")
	if !httputil.IsSuccess(status) {
		return resp, httputil.HTTPStatusError{
			StatusCode: status,
			Body:       httputil.DecodeMessage(resp.Bytes()),
		}
	}
	return resp, nil
}

// LookupSession fetches the session bound to code.
func (c *APIClient) LookupSession(ctx context.Context, code string) (entity.Session, error) {
	var session entity.Session
	resp, err := c.do(ctx, http.MethodGet, "/api/submissions/"+httputil.EscapeSegment(code))
	if err != nil {
		return session, err
	}
	if err := resp.ToJSON(&session); err != nil {
		return session, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}

// SubmitWork posts draft for code. With a file the body is multipart
// (file, notes, url); without one it is JSON {url, notes}.
func (c *APIClient) SubmitWork(ctx context.Context, code string, draft entity.Draft) (httputil.MessageBody, error) {
	path := "/api/submissions/" + httputil.EscapeSegment(code) + "/submit"
	url := strings.TrimSpace(draft.URL)
	notes := strings.TrimSpace(draft.Notes)

	var body []interface{}
	if draft.HasFile() {
		file, err := draft.File.Open()
		if err != nil {
			return httputil.MessageBody{}, fmt.Errorf("open %s: %w", draft.File.Name(), err)
		}
		defer file.Close()

		fields := req.Param{}
		if notes != "" {
			fields["notes"] = notes
		}
		if url != "" {
			fields["url"] = url
		}
		body = []interface{}{
			fields,
			req.FileUpload{
				File:      file,
				FieldName: "file",
				FileName:  draft.File.Name(),
			},
		}
	} else {
		body = []interface{}{
			req.BodyJSON(&entity.LinkSubmission{URL: url, Notes: notes}),
		}
	}

	resp, err := c.do(ctx, http.MethodPost, path, body...)
	if err != nil {
		return httputil.MessageBody{}, err
	}
	return httputil.DecodeMessage(resp.Bytes()), nil
}

// FetchJob fetches the job and its submissions for review.
func (c *APIClient) FetchJob(ctx context.Context, jobID string) (entity.Job, error) {
	var job entity.Job
	resp, err := c.do(ctx, http.MethodGet, "/api/review/"+httputil.EscapeSegment(jobID))
	if err != nil {
		return job, err
	}
	if err := resp.ToJSON(&job); err != nil {
		return job, fmt.Errorf("decode job: %w", err)
	}
	return job, nil
}

// ResolveDownload asks for a signed URL for one stored file.
func (c *APIClient) ResolveDownload(ctx context.Context, jobID, fileKey string) (entity.DownloadLink, error) {
	var link entity.DownloadLink
	path := "/api/review/download/" + httputil.EscapeSegment(jobID) + "/" + httputil.EscapeSegment(fileKey)
	resp, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return link, err
	}
	if err := resp.ToJSON(&link); err != nil {
		return link, fmt.Errorf("decode download link: %w", err)
	}
	return link, nil
}

// Fetch streams the body of a signed URL into w. Signed URLs point at the
// file store, not the portal API, so no API headers are sent.
func (c *APIClient) Fetch(ctx context.Context, signedURL string, w io.Writer) (int64, error) {
	resp, err := c.req.Get(signedURL, ctx)
	if err != nil {
		return 0, err
	}
	response := resp.Response()
	defer response.Body.Close()

	if !httputil.IsSuccess(response.StatusCode) {
		return 0, httputil.HTTPStatusError{StatusCode: response.StatusCode}
	}
	return io.Copy(w, response.Body)
}
