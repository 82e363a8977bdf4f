package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hireonhq/hireon-cli/pkg/model"
)

// CreateScreening opens a screening for the job. The platform keeps at most
// one active screening per job; a duplicate create is rejected server-side.
func (c *Client) CreateScreening(ctx context.Context, req model.CreateScreeningReq) (*model.Screening, error) {
	var res model.Screening
	if err := c.do(ctx, http.MethodPost, "/screenings", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AddScreeningQuestions upserts the question set for the job's screening.
func (c *Client) AddScreeningQuestions(ctx context.Context, req model.AddQuestionsReq) error {
	return c.do(ctx, http.MethodPost, "/screenings/questions", req, nil)
}

// AddCandidatesToScreening assigns candidates to the job's screening.
// Re-assigning an id already in the set is a server-side no-op.
func (c *Client) AddCandidatesToScreening(ctx context.Context, req model.AddCandidatesReq) error {
	return c.do(ctx, http.MethodPost, "/screenings/candidates", req, nil)
}

// GetScreeningStatuses returns the screening record and per-candidate
// progress for a job. A job with no screening rejects with MsgNoScreening;
// callers check api.IsNoScreening and treat it as the empty case.
func (c *Client) GetScreeningStatuses(ctx context.Context, jobID string) (*model.ScreeningStatusRes, error) {
	var res model.ScreeningStatusRes
	path := fmt.Sprintf("/jobs/%s/screening/status", url.PathEscape(jobID))
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// EvaluateScreening asks the platform to score candidate answers against the
// ideal answers. Responds 404 when the screening has no relevant candidates.
func (c *Client) EvaluateScreening(ctx context.Context, screeningID string) error {
	path := fmt.Sprintf("/screenings/%s/evaluate", url.PathEscape(screeningID))
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// GetShortlistedCandidates returns the evaluation outcome, ranked.
func (c *Client) GetShortlistedCandidates(ctx context.Context, screeningID string) ([]model.ShortlistedCandidate, error) {
	var res []model.ShortlistedCandidate
	path := fmt.Sprintf("/screenings/%s/shortlist", url.PathEscape(screeningID))
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}
