package screening

import "github.com/hireonhq/hireon-cli/pkg/model"

// State is the screening workflow position for one job. The flow only moves
// forward; Reset (the server reporting no screening) is the single way back
// to StateNoScreening.
type State string

const (
	StateNoScreening    State = "no_screening"
	StateCreated        State = "created"
	StateQuestionsSaved State = "questions_saved"
	StateAssigned       State = "assigned"
	StateEvaluated      State = "evaluated"
)

var stateRank = map[State]int{
	StateNoScreening:    0,
	StateCreated:        1,
	StateQuestionsSaved: 2,
	StateAssigned:       3,
	StateEvaluated:      4,
}

// jobState is all workflow state the coordinator keeps for one job. Guarded
// by the coordinator mutex; never touched while a network call is in flight.
type jobState struct {
	state       State
	screeningID string
	title       string
	questions   []model.ScreeningQuestion
	statuses    map[string]model.CandidateStatus
	evaluated   bool

	// candidate ids captured when the screening was created, so the
	// questions→assign step and the evaluate fallback know who to assign.
	pendingAssign []string

	// refresh ordering: responses carrying a sequence older than appliedSeq
	// are discarded so a slow fetch cannot overwrite a fresher one.
	nextSeq    uint64
	appliedSeq uint64

	busy map[op]bool
}

func newJobState() *jobState {
	return &jobState{
		state:    StateNoScreening,
		statuses: map[string]model.CandidateStatus{},
		busy:     map[op]bool{},
	}
}

// advance moves the workflow forward to next. Backward moves are ignored:
// every state change funnels through here, so an out-of-order completion can
// never regress the flow.
func (j *jobState) advance(next State) {
	if stateRank[next] > stateRank[j.state] {
		j.state = next
	}
}

// reset returns the job to the pre-screening state. Used when the server
// reports no screening exists.
func (j *jobState) reset() {
	j.state = StateNoScreening
	j.screeningID = ""
	j.statuses = map[string]model.CandidateStatus{}
	j.evaluated = false
}

// Snapshot is a read-only copy of a job's workflow state for display.
type Snapshot struct {
	State       State
	ScreeningID string
	Title       string
	Questions   []model.ScreeningQuestion
	Statuses    map[string]model.CandidateStatus
	Evaluated   bool
}

func (j *jobState) snapshot() Snapshot {
	statuses := make(map[string]model.CandidateStatus, len(j.statuses))
	for id, st := range j.statuses {
		statuses[id] = st
	}
	questions := make([]model.ScreeningQuestion, len(j.questions))
	copy(questions, j.questions)
	return Snapshot{
		State:       j.state,
		ScreeningID: j.screeningID,
		Title:       j.title,
		Questions:   questions,
		Statuses:    statuses,
		Evaluated:   j.evaluated,
	}
}

// op names a coordinator operation for the per-job in-flight guard.
// Refresh has no guard on purpose: overlapping refreshes are safe because
// the sequence check discards the stale one.
type op string

const (
	opCreate    op = "create"
	opQuestions op = "questions"
	opAssign    op = "assign"
	opEvaluate  op = "evaluate"
)
