package main

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nativebridge/portal-go/internal/config"
	"github.com/nativebridge/portal-go/internal/portal/entity"
	"github.com/nativebridge/portal-go/internal/portal/repository"
	"github.com/nativebridge/portal-go/pkg/httputil/httputiltest"
)

// fakePortal serves the submission endpoints of the portal API.
type fakePortal struct {
	lookupErr string
	submitErr string
	onSubmit  func()

	mu        sync.Mutex
	lookups   int
	submits   int
	submitted []byte
}

func (p *fakePortal) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(path, "/api/submissions/"):
		p.mu.Lock()
		p.lookups++
		p.mu.Unlock()

		if p.lookupErr != "" {
			httputiltest.ResponseError(p.lookupErr, http.StatusNotFound, w)
			return
		}
		code := strings.TrimPrefix(path, "/api/submissions/")
		httputiltest.ResponseJSON(entity.Session{Code: code, JobTitle: "Logo Design"}, http.StatusOK, w)

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/submit"):
		body, _ := ioutil.ReadAll(r.Body)
		p.mu.Lock()
		p.submits++
		p.submitted = body
		p.mu.Unlock()

		if p.onSubmit != nil {
			p.onSubmit()
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
			return
		}
		if p.submitErr != "" {
			httputiltest.ResponseError(p.submitErr, http.StatusConflict, w)
			return
		}
		httputiltest.ResponseJSON(httputiltest.Message("Thanks!"), http.StatusOK, w)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (p *fakePortal) counts() (lookups, submits int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lookups, p.submits
}

func (p *fakePortal) lastSubmission() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.submitted
}

func newTestAPIClient(t *testing.T, handler http.Handler) (*repository.APIClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return repository.NewAPIClient(config.APIConfig{BaseURL: server.URL}), server
}
