package usecase

import (
	"context"

	"github.com/nativebridge/portal-go/internal/portal/entity"
	"github.com/nativebridge/portal-go/pkg/httputil"
)

//go:generate moq -out portal_api_moq_test.go . PortalAPI

// PortalAPI is the transport contract against the portal API. Non-2xx
// responses are reported as httputil.HTTPStatusError; any other error means
// the request did not complete or its body could not be read.
type PortalAPI interface {
	LookupSession(ctx context.Context, code string) (entity.Session, error)
	SubmitWork(ctx context.Context, code string, draft entity.Draft) (httputil.MessageBody, error)
	FetchJob(ctx context.Context, jobID string) (entity.Job, error)
	ResolveDownload(ctx context.Context, jobID, fileKey string) (entity.DownloadLink, error)
}

// URLOpener hands a signed download URL to something that can open it.
type URLOpener interface {
	Open(url string) error
}
