package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/nativebridge/portal-go/internal/logger"
	"github.com/nativebridge/portal-go/internal/portal/entity"
)

type ReviewState string

const (
	ReviewIdle    ReviewState = "idle"
	ReviewLoading ReviewState = "loading"
	ReviewLoaded  ReviewState = "loaded"
	ReviewFailed  ReviewState = "failed"
)

// ReviewView is a snapshot of the review flow for rendering.
type ReviewView struct {
	State  ReviewState
	JobID  string
	Job    *entity.Job
	Error  string
	Notice string
	Busy   bool
}

// ReviewFlow drives the reviewer side: one job fetch per job ID and signed
// download links resolved on demand.
type ReviewFlow struct {
	api      PortalAPI
	opener   URLOpener
	inflight *semaphore.Weighted

	mu      sync.Mutex
	state   ReviewState
	jobID   string
	job     *entity.Job
	lastErr error
	errMsg  string
	notice  string
	busy    bool
}

// NewReviewFlow returns an idle review flow. opener may be nil when only
// ResolveDownload is used.
func NewReviewFlow(api PortalAPI, opener URLOpener) *ReviewFlow {
	return &ReviewFlow{
		api:      api,
		opener:   opener,
		inflight: semaphore.NewWeighted(1),
		state:    ReviewIdle,
	}
}

// View returns the current snapshot.
func (f *ReviewFlow) View() ReviewView {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := ReviewView{
		State:  f.state,
		JobID:  f.jobID,
		Error:  f.errMsg,
		Notice: f.notice,
		Busy:   f.busy,
	}
	if f.job != nil {
		job := *f.job
		view.Job = &job
	}
	return view
}

func (f *ReviewFlow) begin() bool {
	if !f.inflight.TryAcquire(1) {
		return false
	}
	f.mu.Lock()
	f.busy = true
	return true
}

func (f *ReviewFlow) end() {
	f.busy = false
	f.mu.Unlock()
	f.inflight.Release(1)
}

// FetchJob loads the job and its submissions. A job ID is fetched at most
// once: calling again with the same ID returns the stored outcome. A
// cancelled fetch leaves the flow idle.
func (f *ReviewFlow) FetchJob(ctx context.Context, jobID string) (entity.Job, error) {
	if !f.begin() {
		return entity.Job{}, ErrInFlight
	}
	defer f.end()

	jobID = strings.TrimSpace(jobID)
	if f.state != ReviewIdle && jobID == f.jobID {
		if f.state == ReviewLoaded {
			return *f.job, nil
		}
		return entity.Job{}, f.lastErr
	}

	f.jobID = jobID
	f.job = nil
	f.notice = ""

	if jobID == "" {
		return entity.Job{}, f.failFetch(ValidationError{Message: MsgMissingJobID})
	}

	f.state = ReviewLoading
	f.errMsg = ""
	log := logger.Logger.WithFields(logrus.Fields{"job_id": jobID})

	f.mu.Unlock()
	job, err := f.api.FetchJob(ctx, jobID)
	f.mu.Lock()

	if err != nil {
		log.WithError(err).Warn("[ReviewFlow.FetchJob] fetch failed")
		classified := classifyFixed(err, MsgJobUnavailable, MsgJobLoadFailed)
		if errors.Is(err, context.Canceled) {
			// not an outcome for this job, the next call fetches again
			f.state = ReviewIdle
			f.errMsg = classified.Error()
			return entity.Job{}, classified
		}
		return entity.Job{}, f.failFetch(classified)
	}

	log.WithField("submissions", len(job.Submissions)).Info("[ReviewFlow.FetchJob] job loaded")
	f.job = &job
	f.lastErr = nil
	f.state = ReviewLoaded
	return job, nil
}

func (f *ReviewFlow) failFetch(err error) error {
	f.state = ReviewFailed
	f.lastErr = err
	f.errMsg = err.Error()
	return err
}

// ResolveDownload asks for a fresh signed URL for file. Links are never
// cached since they expire.
func (f *ReviewFlow) ResolveDownload(ctx context.Context, file entity.FileRef) (string, error) {
	if !f.begin() {
		return "", ErrInFlight
	}
	defer f.end()

	return f.resolveLocked(ctx, file)
}

// Download resolves a signed URL for file and opens it.
func (f *ReviewFlow) Download(ctx context.Context, file entity.FileRef) (string, error) {
	if !f.begin() {
		return "", ErrInFlight
	}
	defer f.end()

	signedURL, err := f.resolveLocked(ctx, file)
	if err != nil {
		return "", err
	}
	if f.opener == nil {
		return signedURL, nil
	}
	if err := f.opener.Open(signedURL); err != nil {
		logger.Logger.WithError(err).Warn("[ReviewFlow.Download] failed to open signed URL")
		return "", f.failDownload(TransportError{Message: MsgDownloadFailed, Err: err})
	}
	return signedURL, nil
}

func (f *ReviewFlow) failDownload(err error) error {
	f.notice = err.Error()
	return err
}

// resolveLocked expects f.mu to be held and releases it around the request.
func (f *ReviewFlow) resolveLocked(ctx context.Context, file entity.FileRef) (string, error) {
	f.notice = ""

	if file.Key == "" {
		return "", f.failDownload(ValidationError{Message: MsgFileUnavailable})
	}
	if f.state != ReviewLoaded {
		return "", f.failDownload(StateError{Message: MsgJobNotLoaded})
	}

	jobID := f.job.ID
	if jobID == "" {
		jobID = f.jobID
	}
	log := logger.Logger.WithFields(logrus.Fields{"job_id": jobID, "file": file.Name})

	f.mu.Unlock()
	link, err := f.api.ResolveDownload(ctx, jobID, file.Key)
	f.mu.Lock()

	if err == nil && link.URL == "" {
		err = errors.New("empty signed URL")
	}
	if err != nil {
		log.WithError(err).Warn("[ReviewFlow.ResolveDownload] resolve failed")
		return "", f.failDownload(classifyFixed(err, MsgDownloadFailed, MsgDownloadFailed))
	}

	log.Debug("[ReviewFlow.ResolveDownload] signed URL resolved")
	return link.URL, nil
}
