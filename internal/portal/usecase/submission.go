package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/nativebridge/portal-go/internal/logger"
	"github.com/nativebridge/portal-go/internal/portal/entity"
)

// Step is the client-visible step of a submission.
type Step string

const (
	StepCode   Step = "code"
	StepSubmit Step = "submit"
	StepDone   Step = "done"
)

// flowState is one of codeState, submitState or doneState. Transitions are
// methods on the state they are legal from.
type flowState interface {
	step() Step
}

type codeState struct{}

type submitState struct {
	session entity.Session
	draft   entity.Draft
}

type doneState struct {
	session entity.Session
}

func (codeState) step() Step   { return StepCode }
func (submitState) step() Step { return StepSubmit }
func (doneState) step() Step   { return StepDone }

func (codeState) lookedUp(session entity.Session) submitState {
	return submitState{session: session}
}

func (s submitState) submitted() doneState {
	return doneState{session: s.session}
}

// SubmissionView is a snapshot of the submission flow for rendering.
type SubmissionView struct {
	Step    Step
	Code    string
	Session *entity.Session
	Draft   entity.Draft
	Error   string
	Success string
	Busy    bool
}

// SubmissionFlow drives the submitter side: code entry, submission, done.
// It is safe for concurrent use; only one request runs at a time.
type SubmissionFlow struct {
	api      PortalAPI
	inflight *semaphore.Weighted

	mu         sync.Mutex
	code       string
	state      flowState
	busy       bool
	errMsg     string
	successMsg string
}

// NewSubmissionFlow returns a flow in the code step.
func NewSubmissionFlow(api PortalAPI) *SubmissionFlow {
	return &SubmissionFlow{
		api:      api,
		inflight: semaphore.NewWeighted(1),
		state:    codeState{},
	}
}

// View returns the current snapshot.
func (f *SubmissionFlow) View() SubmissionView {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := SubmissionView{
		Step:    f.state.step(),
		Code:    f.code,
		Error:   f.errMsg,
		Success: f.successMsg,
		Busy:    f.busy,
	}
	switch st := f.state.(type) {
	case submitState:
		session := st.session
		view.Session = &session
		view.Draft = st.draft
	case doneState:
		session := st.session
		view.Session = &session
	}
	return view
}

// SetCode replaces the code field. Only digits are kept, at most six.
func (f *SubmissionFlow) SetCode(raw string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.code = entity.SanitizeCode(raw)
	return f.code
}

// SetFile attaches a file to the draft; nil removes it.
func (f *SubmissionFlow) SetFile(file entity.Attachment) error {
	return f.editDraft(func(d *entity.Draft) { d.File = file })
}

// SetURL sets the work link of the draft.
func (f *SubmissionFlow) SetURL(url string) error {
	return f.editDraft(func(d *entity.Draft) { d.URL = url })
}

// SetNotes sets the notes of the draft.
func (f *SubmissionFlow) SetNotes(notes string) error {
	return f.editDraft(func(d *entity.Draft) { d.Notes = notes })
}

func (f *SubmissionFlow) editDraft(edit func(d *entity.Draft)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, ok := f.state.(submitState)
	if !ok {
		return StateError{Message: MsgMissingSession}
	}
	edit(&st.draft)
	f.state = st
	return nil
}

func (f *SubmissionFlow) begin() bool {
	if !f.inflight.TryAcquire(1) {
		return false
	}
	f.mu.Lock()
	f.busy = true
	f.errMsg = ""
	f.successMsg = ""
	return true
}

func (f *SubmissionFlow) end() {
	f.busy = false
	f.mu.Unlock()
	f.inflight.Release(1)
}

// fail records err as the banner message and returns it.
func (f *SubmissionFlow) fail(err error) error {
	f.errMsg = err.Error()
	return err
}

// Lookup resolves the code field into a session and moves to the submit step.
// On any failure the flow stays in the code step without a session.
func (f *SubmissionFlow) Lookup(ctx context.Context) (entity.Session, error) {
	if !f.begin() {
		return entity.Session{}, ErrInFlight
	}
	defer f.end()

	current, ok := f.state.(codeState)
	if !ok {
		return entity.Session{}, f.fail(StateError{Message: "Lookup is only possible while entering a code."})
	}

	code := strings.TrimSpace(f.code)
	if code == "" {
		return entity.Session{}, f.fail(ValidationError{Message: MsgEmptyCode})
	}

	log := logger.Logger.WithFields(logrus.Fields{"code": code})

	f.mu.Unlock()
	session, err := f.api.LookupSession(ctx, code)
	f.mu.Lock()

	if err != nil {
		log.WithError(err).Warn("[SubmissionFlow.Lookup] lookup failed")
		return entity.Session{}, f.fail(classify(err, MsgInvalidCode, MsgServerUnreachable))
	}

	log.WithField("job_title", session.JobTitle).Info("[SubmissionFlow.Lookup] session found")
	f.state = current.lookedUp(session)
	return session, nil
}

// Submit sends the draft for the current session and moves to the done step.
// The returned string is the confirmation to show. On failure the flow stays
// in the submit step with the draft untouched.
func (f *SubmissionFlow) Submit(ctx context.Context) (string, error) {
	if !f.begin() {
		return "", ErrInFlight
	}
	defer f.end()

	current, ok := f.state.(submitState)
	if !ok || current.session.Code == "" {
		logger.Logger.Errorf("[SubmissionFlow.Submit] no session in step %q", f.state.step())
		f.state = codeState{}
		return "", f.fail(StateError{Message: MsgMissingSession})
	}

	if !current.draft.IsSubmittable() {
		return "", f.fail(ValidationError{Message: MsgEmptyDraft})
	}

	log := logger.Logger.WithFields(logrus.Fields{
		"code":     current.session.Code,
		"has_file": current.draft.HasFile(),
	})

	f.mu.Unlock()
	resp, err := f.api.SubmitWork(ctx, current.session.Code, current.draft)
	f.mu.Lock()

	if err != nil {
		log.WithError(err).Warn("[SubmissionFlow.Submit] submission failed")
		return "", f.fail(classify(err, MsgSubmissionFailed, MsgSubmitUnreachable))
	}

	log.Info("[SubmissionFlow.Submit] submission accepted")
	f.successMsg = resp.Text(MsgSubmissionReceived)
	f.state = current.submitted()
	return f.successMsg, nil
}

// Reset returns to an empty code step. It is refused while a request runs.
func (f *SubmissionFlow) Reset() error {
	if !f.begin() {
		return ErrInFlight
	}
	defer f.end()

	f.code = ""
	f.state = codeState{}
	return nil
}
