package model

import "time"

// MaxScreeningQuestions is the platform limit on questions per screening.
const MaxScreeningQuestions = 3

type IdealAnswer string

const (
	IdealAnswerYes IdealAnswer = "Yes"
	IdealAnswerNo  IdealAnswer = "No"
)

// Screening groups a job, a question set, and the candidates assigned for
// AI-assisted evaluation. Server-owned; the client caches only the id.
type Screening struct {
	ScreeningID string    `json:"screening_id"`
	JobID       string    `json:"job_id"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
}

type ScreeningQuestion struct {
	QuestionText string      `json:"question_text" validate:"required"`
	IdealAnswer  IdealAnswer `json:"ideal_answer" validate:"required,oneof=Yes No"`
}

type CandidateStatus string

const (
	CandidateStatusPending   CandidateStatus = "pending"
	CandidateStatusCompleted CandidateStatus = "completed"
)

// CandidateScreeningStatus is the per-candidate-per-screening progress tuple
// the server produces after assignment.
type CandidateScreeningStatus struct {
	CandidateID string          `json:"candidate_id"`
	Status      CandidateStatus `json:"status"`
}

type CreateScreeningReq struct {
	JobID string `json:"job_id" validate:"required"`
	Title string `json:"title" validate:"required"`
}

type AddQuestionsReq struct {
	JobID     string              `json:"job_id" validate:"required"`
	Questions []ScreeningQuestion `json:"questions" validate:"required,min=1,max=3,dive"`
}

type AddCandidatesReq struct {
	JobID        string   `json:"job_id" validate:"required"`
	CandidateIDs []string `json:"candidate_ids" validate:"required,min=1"`
}

type ScreeningStatusRes struct {
	Screening  Screening                  `json:"screening"`
	Candidates []CandidateScreeningStatus `json:"candidates"`
}

// ShortlistedCandidate is the server-computed outcome of evaluating a
// screening. Display-only on the client.
type ShortlistedCandidate struct {
	CandidateID string          `json:"candidate_id"`
	Name        string          `json:"name"`
	Email       *string         `json:"email"`
	Score       *float64        `json:"score"`
	Status      CandidateStatus `json:"status"`
}
