package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hireonhq/hireon-cli/pkg/model"
)

// ListJobs returns the caller's job postings (employer) or matching open jobs
// (seeker); the platform decides based on the token's role.
func (c *Client) ListJobs(ctx context.Context, query model.ListJobsQuery) ([]model.Job, error) {
	q := url.Values{}
	if query.Page > 0 {
		q.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(query.PageSize))
	}
	if query.Search != nil {
		q.Set("search", *query.Search)
	}
	if query.Status != nil {
		q.Set("status", string(*query.Status))
	}

	path := "/jobs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res []model.Job
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GetJob(ctx context.Context, jobID string) (*model.Job, error) {
	var res model.Job
	if err := c.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PostJob creates a job posting; it enters review with status "pending".
func (c *Client) PostJob(ctx context.Context, req model.PostJobReq) (*model.Job, error) {
	var res model.Job
	if err := c.do(ctx, http.MethodPost, "/jobs", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateJob(ctx context.Context, jobID string, req model.UpdateJobReq) (*model.Job, error) {
	var res model.Job
	if err := c.do(ctx, http.MethodPatch, "/jobs/"+url.PathEscape(jobID), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CloseJob expires a posting early.
func (c *Client) CloseJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/jobs/%s/close", url.PathEscape(jobID)), nil, nil)
}

// GetApplicants returns every application for a job, including the
// server-computed relevance flag and score per applicant.
func (c *Client) GetApplicants(ctx context.Context, jobID string) ([]model.Applicant, error) {
	var res []model.Applicant
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%s/applicants", url.PathEscape(jobID)), nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}
