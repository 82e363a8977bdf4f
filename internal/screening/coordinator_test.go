package screening

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hireonhq/hireon-cli/internal/api"
	"github.com/hireonhq/hireon-cli/pkg/model"
)

// fakeGateway records calls and returns scripted responses.
type fakeGateway struct {
	mu sync.Mutex

	createCalls    int
	questionCalls  int
	assignCalls    int
	statusCalls    int
	evaluateCalls  int
	lastAssignment []string

	createErr    error
	questionsErr error
	assignErr    error
	statusErr    error
	evaluateErr  error

	statusRes *model.ScreeningStatusRes

	// statusHook, when set, overrides statusRes/statusErr; n is the 1-based
	// call number.
	statusHook func(n int) (*model.ScreeningStatusRes, error)
}

func (f *fakeGateway) CreateScreening(_ context.Context, req model.CreateScreeningReq) (*model.Screening, error) {
	f.mu.Lock()
	f.createCalls++
	f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Screening{ScreeningID: "scr-1", JobID: req.JobID, Title: req.Title}, nil
}

func (f *fakeGateway) AddScreeningQuestions(_ context.Context, _ model.AddQuestionsReq) error {
	f.mu.Lock()
	f.questionCalls++
	f.mu.Unlock()
	return f.questionsErr
}

func (f *fakeGateway) AddCandidatesToScreening(_ context.Context, req model.AddCandidatesReq) error {
	f.mu.Lock()
	f.assignCalls++
	f.lastAssignment = req.CandidateIDs
	f.mu.Unlock()
	return f.assignErr
}

func (f *fakeGateway) GetScreeningStatuses(_ context.Context, _ string) (*model.ScreeningStatusRes, error) {
	f.mu.Lock()
	f.statusCalls++
	n := f.statusCalls
	f.mu.Unlock()
	if f.statusHook != nil {
		return f.statusHook(n)
	}
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	if f.statusRes != nil {
		return f.statusRes, nil
	}
	return &model.ScreeningStatusRes{Screening: model.Screening{ScreeningID: "scr-1"}}, nil
}

func (f *fakeGateway) EvaluateScreening(_ context.Context, _ string) error {
	f.mu.Lock()
	f.evaluateCalls++
	f.mu.Unlock()
	return f.evaluateErr
}

// fakeAlerter counts notices by kind.
type fakeAlerter struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (f *fakeAlerter) Info(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.infos = append(f.infos, msg)
}

func (f *fakeAlerter) Success(string) {}

func (f *fakeAlerter) Error(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, msg)
}

// fakeNavigator records screen transitions.
type fakeNavigator struct {
	mu         sync.Mutex
	questions  int
	shortlists int
}

func (f *fakeNavigator) OpenQuestions(string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions++
}

func (f *fakeNavigator) ShowShortlist(string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shortlists++
}

func newTestCoordinator(gw Gateway) (*Coordinator, *fakeAlerter, *fakeNavigator) {
	alerts := &fakeAlerter{}
	nav := &fakeNavigator{}
	return NewCoordinator(gw, alerts, nav, zap.NewNop()), alerts, nav
}

func noScreeningErr() error {
	return &api.Error{Status: http.StatusNotFound, Message: api.MsgNoScreening}
}

func statusRes(pairs ...string) *model.ScreeningStatusRes {
	res := &model.ScreeningStatusRes{Screening: model.Screening{ScreeningID: "scr-1", Title: "Round 1"}}
	for i := 0; i+1 < len(pairs); i += 2 {
		res.Candidates = append(res.Candidates, model.CandidateScreeningStatus{
			CandidateID: pairs[i],
			Status:      model.CandidateStatus(pairs[i+1]),
		})
	}
	return res
}

func TestCreateScreening_EmptySetGuard(t *testing.T) {
	gw := &fakeGateway{}
	coord, alerts, nav := newTestCoordinator(gw)

	err := coord.CreateScreening(context.Background(), "job-1", "Round 1", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, gw.createCalls, "empty candidate set must not reach the network")
	assert.Len(t, alerts.infos, 1, "exactly one informational alert")
	assert.Empty(t, alerts.errors)
	assert.Equal(t, 0, nav.questions)
}

func TestCreateScreening_Success(t *testing.T) {
	gw := &fakeGateway{}
	coord, alerts, nav := newTestCoordinator(gw)

	err := coord.CreateScreening(context.Background(), "job-1", "Round 1", []string{"c1", "c2"})

	require.NoError(t, err)
	assert.Equal(t, 1, gw.createCalls)
	assert.Equal(t, 1, nav.questions, "success opens question entry")
	assert.Empty(t, alerts.errors)

	snap := coord.Snapshot("job-1")
	assert.Equal(t, StateCreated, snap.State)
	assert.Equal(t, "scr-1", snap.ScreeningID)
}

func TestCreateScreening_ExistingGoesToQuestions(t *testing.T) {
	gw := &fakeGateway{}
	coord, _, nav := newTestCoordinator(gw)

	require.NoError(t, coord.CreateScreening(context.Background(), "job-1", "Round 1", []string{"c1"}))
	require.NoError(t, coord.CreateScreening(context.Background(), "job-1", "Round 1", []string{"c1"}))

	assert.Equal(t, 1, gw.createCalls, "second start must not re-create")
	assert.Equal(t, 2, nav.questions)
}

func TestAssignCandidates_EmptySetGuard(t *testing.T) {
	gw := &fakeGateway{}
	coord, alerts, _ := newTestCoordinator(gw)

	err := coord.AssignCandidates(context.Background(), "job-1", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, gw.assignCalls)
	assert.Equal(t, 0, gw.statusCalls)
	assert.Len(t, alerts.infos, 1)
}

func TestAssignCandidates_RefreshesAfterAssign(t *testing.T) {
	gw := &fakeGateway{statusRes: statusRes("c1", "pending", "c2", "pending")}
	coord, _, _ := newTestCoordinator(gw)

	err := coord.AssignCandidates(context.Background(), "job-1", []string{"c1", "c2"})

	require.NoError(t, err)
	assert.Equal(t, 1, gw.assignCalls)
	assert.Equal(t, []string{"c1", "c2"}, gw.lastAssignment)
	assert.Equal(t, 1, gw.statusCalls, "assignment refreshes statuses immediately")

	snap := coord.Snapshot("job-1")
	assert.Equal(t, StateAssigned, snap.State)
	assert.Equal(t, model.CandidateStatusPending, snap.Statuses["c1"])
}

func TestAssignCandidates_NoScreeningResetsQuietly(t *testing.T) {
	gw := &fakeGateway{assignErr: noScreeningErr()}
	coord, alerts, _ := newTestCoordinator(gw)

	err := coord.AssignCandidates(context.Background(), "job-1", []string{"c1"})

	require.NoError(t, err, "no-screening is the normal not-started case")
	assert.Empty(t, alerts.errors)
	snap := coord.Snapshot("job-1")
	assert.Equal(t, StateNoScreening, snap.State)
	assert.Empty(t, snap.Statuses)
}

func TestRefreshStatuses_Idempotent(t *testing.T) {
	gw := &fakeGateway{statusRes: statusRes("c1", "pending", "c2", "completed")}
	coord, _, _ := newTestCoordinator(gw)

	require.NoError(t, coord.RefreshStatuses(context.Background(), "job-1"))
	first := coord.Snapshot("job-1")

	require.NoError(t, coord.RefreshStatuses(context.Background(), "job-1"))
	second := coord.Snapshot("job-1")

	assert.Equal(t, first.Statuses, second.Statuses)
	assert.Equal(t, first.ScreeningID, second.ScreeningID)
	assert.Equal(t, 2, gw.statusCalls)
}

func TestRefreshStatuses_NoScreeningIsNotAnError(t *testing.T) {
	gw := &fakeGateway{statusErr: noScreeningErr()}
	coord, alerts, _ := newTestCoordinator(gw)

	err := coord.RefreshStatuses(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Empty(t, alerts.errors, "expected-empty must not alert")
	assert.Empty(t, coord.Snapshot("job-1").Statuses)
}

func TestRefreshStatuses_OtherErrorsSurface(t *testing.T) {
	gw := &fakeGateway{statusErr: &api.Error{Status: http.StatusInternalServerError, Message: "boom"}}
	coord, alerts, _ := newTestCoordinator(gw)

	err := coord.RefreshStatuses(context.Background(), "job-1")

	require.Error(t, err)
	assert.Len(t, alerts.errors, 1)
}

func TestRefreshStatuses_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	gw := &fakeGateway{}
	gw.statusHook = func(n int) (*model.ScreeningStatusRes, error) {
		if n == 1 {
			close(entered)
			<-release
			return statusRes("c1", "pending"), nil // stale
		}
		return statusRes("c1", "completed"), nil // fresh
	}
	coord, _, _ := newTestCoordinator(gw)

	done := make(chan error, 1)
	go func() {
		done <- coord.RefreshStatuses(context.Background(), "job-1")
	}()
	<-entered

	// the second refresh completes while the first is still in flight
	require.NoError(t, coord.RefreshStatuses(context.Background(), "job-1"))
	close(release)
	require.NoError(t, <-done)

	snap := coord.Snapshot("job-1")
	assert.Equal(t, model.CandidateStatusCompleted, snap.Statuses["c1"],
		"late response from the older refresh must not overwrite the fresher one")
}

func TestEvaluate_ShortCircuitsOnceEvaluated(t *testing.T) {
	gw := &fakeGateway{statusRes: statusRes("c1", "completed")}
	coord, _, nav := newTestCoordinator(gw)
	require.NoError(t, coord.RefreshStatuses(context.Background(), "job-1"))

	require.NoError(t, coord.Evaluate(context.Background(), "job-1"))
	assert.Equal(t, 1, gw.evaluateCalls)
	assert.Equal(t, 1, nav.shortlists)

	require.NoError(t, coord.Evaluate(context.Background(), "job-1"))
	assert.Equal(t, 1, gw.evaluateCalls, "already-evaluated must skip the endpoint")
	assert.Equal(t, 2, nav.shortlists, "and still navigate to the shortlist")
}

func TestEvaluate_FallsBackToCreation(t *testing.T) {
	gw := &fakeGateway{}
	coord, alerts, _ := newTestCoordinator(gw)

	err := coord.Evaluate(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, 0, gw.evaluateCalls, "no screening id means no evaluate call")
	// with no candidates known either, creation short-circuits on the
	// empty-set guard
	assert.Equal(t, 0, gw.createCalls)
	assert.Len(t, alerts.infos, 1)
}

func TestEvaluate_NotFoundShowsInfoAndStays(t *testing.T) {
	gw := &fakeGateway{
		statusRes:   statusRes("c1", "completed"),
		evaluateErr: &api.Error{Status: http.StatusNotFound, Message: "not found"},
	}
	coord, alerts, nav := newTestCoordinator(gw)
	require.NoError(t, coord.RefreshStatuses(context.Background(), "job-1"))

	err := coord.Evaluate(context.Background(), "job-1")

	require.NoError(t, err)
	require.Len(t, alerts.infos, 1)
	assert.Contains(t, strings.ToLower(alerts.infos[0]), "no relevant candidates")
	assert.Equal(t, 0, nav.shortlists, "404 must not navigate")
	assert.False(t, coord.Snapshot("job-1").Evaluated)
}

func TestEvaluate_GenericErrorAlerts(t *testing.T) {
	gw := &fakeGateway{
		statusRes:   statusRes("c1", "completed"),
		evaluateErr: &api.Error{Status: http.StatusInternalServerError, Message: "boom"},
	}
	coord, alerts, nav := newTestCoordinator(gw)
	require.NoError(t, coord.RefreshStatuses(context.Background(), "job-1"))

	err := coord.Evaluate(context.Background(), "job-1")

	require.Error(t, err)
	assert.Len(t, alerts.errors, 1)
	assert.Equal(t, 0, nav.shortlists)
	assert.False(t, coord.Snapshot("job-1").Evaluated)
}

func TestSaveQuestions_Validation(t *testing.T) {
	gw := &fakeGateway{}
	coord, _, _ := newTestCoordinator(gw)
	require.NoError(t, coord.CreateScreening(context.Background(), "job-1", "Round 1", []string{"c1"}))

	cases := []struct {
		name      string
		questions []model.ScreeningQuestion
	}{
		{"empty", nil},
		{"too many", []model.ScreeningQuestion{
			{QuestionText: "q1", IdealAnswer: model.IdealAnswerYes},
			{QuestionText: "q2", IdealAnswer: model.IdealAnswerYes},
			{QuestionText: "q3", IdealAnswer: model.IdealAnswerYes},
			{QuestionText: "q4", IdealAnswer: model.IdealAnswerYes},
		}},
		{"blank text", []model.ScreeningQuestion{{QuestionText: "", IdealAnswer: model.IdealAnswerYes}}},
		{"bad answer", []model.ScreeningQuestion{{QuestionText: "q1", IdealAnswer: "Maybe"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := coord.SaveQuestions(context.Background(), "job-1", tc.questions)
			require.Error(t, err)
			assert.Equal(t, 0, gw.questionCalls, "validation failures must not reach the network")
		})
	}
}

func TestSaveQuestions_ThenAssigns(t *testing.T) {
	gw := &fakeGateway{statusRes: statusRes("c1", "pending")}
	coord, _, _ := newTestCoordinator(gw)
	require.NoError(t, coord.CreateScreening(context.Background(), "job-1", "Round 1", []string{"c1"}))

	questions := []model.ScreeningQuestion{
		{QuestionText: "Can you relocate?", IdealAnswer: model.IdealAnswerYes},
	}
	require.NoError(t, coord.SaveQuestions(context.Background(), "job-1", questions))

	assert.Equal(t, 1, gw.questionCalls)
	assert.Equal(t, 1, gw.assignCalls, "saving questions assigns the captured candidate set")
	assert.Equal(t, []string{"c1"}, gw.lastAssignment)
	assert.Equal(t, StateAssigned, coord.Snapshot("job-1").State)
}

func TestSaveQuestions_AssignFailureStaysDistinguishable(t *testing.T) {
	gw := &fakeGateway{assignErr: &api.Error{Status: http.StatusInternalServerError, Message: "boom"}}
	coord, alerts, _ := newTestCoordinator(gw)
	require.NoError(t, coord.CreateScreening(context.Background(), "job-1", "Round 1", []string{"c1"}))

	questions := []model.ScreeningQuestion{
		{QuestionText: "Can you relocate?", IdealAnswer: model.IdealAnswerYes},
	}
	err := coord.SaveQuestions(context.Background(), "job-1", questions)

	require.Error(t, err)
	assert.Equal(t, StateQuestionsSaved, coord.Snapshot("job-1").State,
		"questions saved but not assigned must be visible as its own state")
	assert.Len(t, alerts.errors, 1)

	// the assignment alone is retryable
	gw.assignErr = nil
	gw.statusRes = statusRes("c1", "pending")
	require.NoError(t, coord.AssignCandidates(context.Background(), "job-1", []string{"c1"}))
	assert.Equal(t, StateAssigned, coord.Snapshot("job-1").State)
}

func TestEditQuestions_PrefillsSaved(t *testing.T) {
	gw := &fakeGateway{statusRes: statusRes("c1", "pending")}
	coord, _, _ := newTestCoordinator(gw)
	require.NoError(t, coord.CreateScreening(context.Background(), "job-1", "Round 1", []string{"c1"}))

	_, err := coord.EditQuestions("job-2")
	require.ErrorIs(t, err, ErrNoScreening)

	questions := []model.ScreeningQuestion{
		{QuestionText: "Can you relocate?", IdealAnswer: model.IdealAnswerYes},
		{QuestionText: "Do you have a license?", IdealAnswer: model.IdealAnswerNo},
	}
	require.NoError(t, coord.SaveQuestions(context.Background(), "job-1", questions))

	saved, err := coord.EditQuestions("job-1")
	require.NoError(t, err)
	assert.Equal(t, questions, saved)
}

func TestEnterRelevantFilter_AssignsRelevantOnly(t *testing.T) {
	gw := &fakeGateway{statusRes: statusRes("c1", "pending", "c3", "pending")}
	coord, _, _ := newTestCoordinator(gw)

	applicants := []model.Applicant{
		{CandidateID: "c1", RelevantCandidate: model.RelevantYes},
		{CandidateID: "c2", RelevantCandidate: model.RelevantNo},
		{CandidateID: "c3", RelevantCandidate: model.RelevantYes},
	}
	require.NoError(t, coord.EnterRelevantFilter(context.Background(), "job-1", applicants))

	assert.Equal(t, []string{"c1", "c3"}, gw.lastAssignment)
	assert.Equal(t, 1, gw.statusCalls)
}

func TestEnterRelevantFilter_NoRelevantJustRefreshes(t *testing.T) {
	gw := &fakeGateway{statusErr: noScreeningErr()}
	coord, alerts, _ := newTestCoordinator(gw)

	applicants := []model.Applicant{
		{CandidateID: "c1", RelevantCandidate: model.RelevantNo},
	}
	require.NoError(t, coord.EnterRelevantFilter(context.Background(), "job-1", applicants))

	assert.Equal(t, 0, gw.assignCalls)
	assert.Equal(t, 1, gw.statusCalls)
	assert.Empty(t, alerts.errors)
}

func TestInFlightGuard(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	gw := &blockingEvaluateGateway{
		fakeGateway: &fakeGateway{statusRes: statusRes("c1", "completed")},
		entered:     entered,
		release:     release,
	}
	coord, _, _ := newTestCoordinator(gw)
	require.NoError(t, coord.RefreshStatuses(context.Background(), "job-1"))

	done := make(chan error, 1)
	go func() {
		done <- coord.Evaluate(context.Background(), "job-1")
	}()
	<-entered

	err := coord.Evaluate(context.Background(), "job-1")
	require.ErrorIs(t, err, ErrBusy, "a duplicate submission while one is in flight is rejected locally")

	close(release)
	require.NoError(t, <-done)
}

// blockingEvaluateGateway parks the first EvaluateScreening call until
// released so the test can observe the busy window.
type blockingEvaluateGateway struct {
	*fakeGateway
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (b *blockingEvaluateGateway) EvaluateScreening(ctx context.Context, screeningID string) error {
	b.once.Do(func() {
		close(b.entered)
		<-b.release
	})
	return b.fakeGateway.EvaluateScreening(ctx, screeningID)
}
