package screening

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hireonhq/hireon-cli/pkg/model"
)

// ErrBusy is returned when an operation is invoked while a previous
// invocation for the same job is still in flight. The caller did not reach
// the network; nothing changed.
var ErrBusy = errors.New("operation already in progress")

// ErrNoScreening is returned by operations that need a screening the
// coordinator does not know about yet.
var ErrNoScreening = errors.New("no screening for this job")

// Coordinator drives a job's candidate pool through screening setup, question
// configuration, status tracking, and evaluation. It owns all workflow state
// per job; every server interaction goes through the injected Gateway, every
// user notice through the Alerter, every screen change through the Navigator.
//
// All methods are safe for concurrent use. Per job and operation, at most one
// invocation runs at a time; duplicates return ErrBusy without touching the
// network.
type Coordinator struct {
	gw       Gateway
	alerts   Alerter
	nav      Navigator
	log      *zap.Logger
	validate *validator.Validate

	mu   sync.Mutex
	jobs map[string]*jobState
}

func NewCoordinator(gw Gateway, alerts Alerter, nav Navigator, log *zap.Logger) *Coordinator {
	return &Coordinator{
		gw:       gw,
		alerts:   alerts,
		nav:      nav,
		log:      log,
		validate: validator.New(),
		jobs:     map[string]*jobState{},
	}
}

func (c *Coordinator) job(jobID string) *jobState {
	if js, ok := c.jobs[jobID]; ok {
		return js
	}
	js := newJobState()
	c.jobs[jobID] = js
	return js
}

// begin marks op busy for the job. Returns false when already busy.
func (c *Coordinator) begin(jobID string, o op) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	js := c.job(jobID)
	if js.busy[o] {
		return false
	}
	js.busy[o] = true
	return true
}

func (c *Coordinator) end(jobID string, o op) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.job(jobID).busy[o] = false
}

// Snapshot returns a copy of the job's workflow state for display.
func (c *Coordinator) Snapshot(jobID string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.job(jobID).snapshot()
}

// EnterRelevantFilter reconciles local state for the job's relevant-candidate
// view: it assigns the relevant subset to the screening (when there is one)
// and refreshes statuses. A job with no screening yet is the normal empty
// case, not an error.
func (c *Coordinator) EnterRelevantFilter(ctx context.Context, jobID string, applicants []model.Applicant) error {
	var relevant []string
	for _, a := range applicants {
		if a.IsRelevant() {
			relevant = append(relevant, a.CandidateID)
		}
	}

	if len(relevant) == 0 {
		return c.RefreshStatuses(ctx, jobID)
	}
	return c.AssignCandidates(ctx, jobID, relevant)
}

// CreateScreening opens a screening for the job and moves into question
// entry. When a screening is already known for this job, it goes straight to
// question entry without another create call. An empty candidate set
// short-circuits with a single informational alert and no network call.
func (c *Coordinator) CreateScreening(ctx context.Context, jobID, title string, candidateIDs []string) error {
	if !c.begin(jobID, opCreate) {
		return ErrBusy
	}
	defer c.end(jobID, opCreate)

	c.mu.Lock()
	js := c.job(jobID)
	existing := js.screeningID
	c.mu.Unlock()

	if existing != "" {
		c.nav.OpenQuestions(jobID, existing)
		return nil
	}

	if len(candidateIDs) == 0 {
		c.alerts.Info("No relevant candidates to screen for this job yet.")
		return nil
	}

	req := model.CreateScreeningReq{JobID: jobID, Title: title}
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid screening: %w", err)
	}

	scr, err := c.gw.CreateScreening(ctx, req)
	if err != nil {
		c.log.Error("create_screening: request failed",
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		c.alerts.Error("Could not start screening. Please try again.")
		return err
	}

	c.mu.Lock()
	js.screeningID = scr.ScreeningID
	js.title = title
	js.pendingAssign = candidateIDs
	js.advance(StateCreated)
	c.mu.Unlock()

	c.log.Info("create_screening: screening created",
		zap.String("job_id", jobID),
		zap.String("screening_id", scr.ScreeningID),
	)

	c.nav.OpenQuestions(jobID, scr.ScreeningID)
	return nil
}

// SaveQuestions persists the 1–3 screening questions, then assigns the
// candidate set captured at creation. A validation failure blocks submission
// and is returned to the caller for inline display; nothing is sent.
func (c *Coordinator) SaveQuestions(ctx context.Context, jobID string, questions []model.ScreeningQuestion) error {
	if !c.begin(jobID, opQuestions) {
		return ErrBusy
	}
	defer c.end(jobID, opQuestions)

	req := model.AddQuestionsReq{JobID: jobID, Questions: questions}
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid questions: %w", err)
	}

	c.mu.Lock()
	js := c.job(jobID)
	if js.screeningID == "" {
		c.mu.Unlock()
		return ErrNoScreening
	}
	pending := js.pendingAssign
	c.mu.Unlock()

	if err := c.gw.AddScreeningQuestions(ctx, req); err != nil {
		c.log.Error("save_questions: request failed",
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		c.alerts.Error("Could not save screening questions. Please try again.")
		return err
	}

	c.mu.Lock()
	js.questions = questions
	js.advance(StateQuestionsSaved)
	c.mu.Unlock()

	c.log.Info("save_questions: questions saved",
		zap.String("job_id", jobID),
		zap.Int("count", len(questions)),
	)

	return c.AssignCandidates(ctx, jobID, pending)
}

// EditQuestions returns the saved questions for pre-filling the question
// form. Resubmission goes through SaveQuestions again; the server treats it
// as an upsert.
func (c *Coordinator) EditQuestions(jobID string) ([]model.ScreeningQuestion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	js := c.job(jobID)
	if js.screeningID == "" {
		return nil, ErrNoScreening
	}
	questions := make([]model.ScreeningQuestion, len(js.questions))
	copy(questions, js.questions)
	return questions, nil
}

// AssignCandidates sends the candidate id set to the screening, then fetches
// statuses so the local map tracks the server. An empty set short-circuits
// with a single informational alert. The server rejecting with "no screening"
// resets local state to the empty case without alerting.
func (c *Coordinator) AssignCandidates(ctx context.Context, jobID string, candidateIDs []string) error {
	if !c.begin(jobID, opAssign) {
		return ErrBusy
	}
	defer c.end(jobID, opAssign)

	if len(candidateIDs) == 0 {
		c.alerts.Info("No candidates to assign to this screening.")
		return nil
	}

	req := model.AddCandidatesReq{JobID: jobID, CandidateIDs: candidateIDs}
	if err := c.gw.AddCandidatesToScreening(ctx, req); err != nil {
		if isNoScreening(err) {
			c.mu.Lock()
			c.job(jobID).reset()
			c.mu.Unlock()
			return nil
		}
		c.log.Error("assign_candidates: request failed",
			zap.String("job_id", jobID),
			zap.Int("count", len(candidateIDs)),
			zap.Error(err),
		)
		c.alerts.Error("Could not assign candidates to screening. Please try again.")
		return err
	}

	c.mu.Lock()
	c.job(jobID).advance(StateAssigned)
	c.mu.Unlock()

	c.log.Info("assign_candidates: candidates assigned",
		zap.String("job_id", jobID),
		zap.Int("count", len(candidateIDs)),
	)

	return c.RefreshStatuses(ctx, jobID)
}

// RefreshStatuses fetches the screening record and per-candidate statuses and
// rebuilds the local map. Responses are sequence-tagged per job; a response
// older than the last applied one is discarded. "No screening exists" is the
// normal not-started case: the map empties and no alert is shown.
func (c *Coordinator) RefreshStatuses(ctx context.Context, jobID string) error {
	c.mu.Lock()
	js := c.job(jobID)
	js.nextSeq++
	seq := js.nextSeq
	c.mu.Unlock()

	res, err := c.gw.GetScreeningStatuses(ctx, jobID)
	if err != nil {
		if isNoScreening(err) {
			c.mu.Lock()
			if seq > js.appliedSeq {
				js.appliedSeq = seq
				js.reset()
			}
			c.mu.Unlock()
			return nil
		}
		c.log.Error("refresh_statuses: request failed",
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		c.alerts.Error("Could not fetch screening status. Please try again.")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq <= js.appliedSeq {
		// a newer refresh already landed
		return nil
	}
	js.appliedSeq = seq
	js.screeningID = res.Screening.ScreeningID
	if res.Screening.Title != "" {
		js.title = res.Screening.Title
	}
	js.statuses = make(map[string]model.CandidateStatus, len(res.Candidates))
	for _, cand := range res.Candidates {
		js.statuses[cand.CandidateID] = cand.Status
	}
	js.advance(StateCreated)
	if len(res.Candidates) > 0 {
		js.advance(StateAssigned)
	}
	return nil
}

// Evaluate asks the platform to score the screening and navigates to the
// shortlist. With no screening known it falls back to CreateScreening. Once
// evaluated in this session, repeat calls skip the server and navigate
// directly. A 404 means the screening has no relevant candidates: an
// informational alert, no navigation.
func (c *Coordinator) Evaluate(ctx context.Context, jobID string) error {
	if !c.begin(jobID, opEvaluate) {
		return ErrBusy
	}
	defer c.end(jobID, opEvaluate)

	c.mu.Lock()
	js := c.job(jobID)
	screeningID := js.screeningID
	title := js.title
	pending := js.pendingAssign
	evaluated := js.evaluated
	c.mu.Unlock()

	if screeningID == "" {
		return c.CreateScreening(ctx, jobID, title, pending)
	}

	if evaluated {
		c.nav.ShowShortlist(jobID, screeningID)
		return nil
	}

	if err := c.gw.EvaluateScreening(ctx, screeningID); err != nil {
		if isNotFound(err) {
			c.alerts.Info("There are no relevant candidates to evaluate for this screening.")
			return nil
		}
		c.log.Error("evaluate: request failed",
			zap.String("job_id", jobID),
			zap.String("screening_id", screeningID),
			zap.Error(err),
		)
		c.alerts.Error("Could not evaluate screening. Please try again.")
		return err
	}

	c.mu.Lock()
	js.evaluated = true
	js.advance(StateEvaluated)
	c.mu.Unlock()

	c.log.Info("evaluate: screening evaluated",
		zap.String("job_id", jobID),
		zap.String("screening_id", screeningID),
	)

	c.nav.ShowShortlist(jobID, screeningID)
	return nil
}
