package model

import "time"

// Relevance is the server-computed match flag on an application. The platform
// sends it as the literal strings "yes"/"no", so it stays a string here rather
// than a bool.
type Relevance string

const (
	RelevantYes Relevance = "yes"
	RelevantNo  Relevance = "no"
)

// Applicant is one candidate's application to a job. Fetched once per
// job view; the client never mutates it.
type Applicant struct {
	CandidateID       string     `json:"candidate_id"`
	JobID             string     `json:"job_id"`
	Name              string     `json:"name"`
	Email             *string    `json:"email"`
	Skills            []string   `json:"skills"`
	ExperienceYears   *int       `json:"experience_years"`
	Education         *string    `json:"education"`
	RelevantCandidate Relevance  `json:"relevant_candidate"`
	RelevantScore     float64    `json:"relevant_score"`
	AppliedAt         *time.Time `json:"applied_at"`
}

// IsRelevant reports whether the server flagged this applicant as a match.
func (a Applicant) IsRelevant() bool {
	return a.RelevantCandidate == RelevantYes
}
