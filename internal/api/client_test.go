package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireonhq/hireon-cli/pkg/model"
)

type staticToken string

func (s staticToken) AccessToken() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token TokenSource) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "hireon-cli/test", 5*time.Second, token)
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 400,
		"data":    data,
	})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/job-1/screening/status", r.URL.Path)
		writeEnvelope(w, http.StatusOK, model.ScreeningStatusRes{
			Screening: model.Screening{ScreeningID: "scr-1", JobID: "job-1"},
			Candidates: []model.CandidateScreeningStatus{
				{CandidateID: "c1", Status: model.CandidateStatusPending},
			},
		})
	}, nil)

	res, err := client.GetScreeningStatuses(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, "scr-1", res.Screening.ScreeningID)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, model.CandidateStatusPending, res.Candidates[0].Status)
}

func TestClient_ServerErrorBecomesTypedError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", MsgNoScreening)
	}, nil)

	_, err := client.GetScreeningStatuses(context.Background(), "job-1")

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, MsgNoScreening, apiErr.Message)
	assert.True(t, IsNoScreening(err))
	assert.True(t, IsNotFound(err))
}

func TestClient_NonEnvelopeErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}, nil)

	_, err := client.GetProfile(context.Background())

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestClient_AttachesAuthAndRequestID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"), "mutating calls carry a request id")
		assert.Equal(t, "hireon-cli/test", r.Header.Get("User-Agent"))

		var req model.AddCandidatesReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"c1", "c2"}, req.CandidateIDs)

		writeEnvelope(w, http.StatusOK, map[string]bool{"success": true})
	}, staticToken("tok-123"))

	err := client.AddCandidatesToScreening(context.Background(), model.AddCandidatesReq{
		JobID:        "job-1",
		CandidateIDs: []string{"c1", "c2"},
	})
	require.NoError(t, err)
}

func TestClient_VerifyOTPReturnsSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/otp/verify", r.URL.Path)
		writeEnvelope(w, http.StatusOK, model.AuthRes{
			User: model.UserDetails{
				UserID: "u1",
				Name:   "Asha",
				Phone:  "+15550100",
				Role:   model.UserRoleEmployer,
				Status: model.UserStatusActive,
			},
			AccessToken: "tok-abc",
		})
	}, nil)

	res, err := client.VerifyOTP(context.Background(), model.VerifyOTPReq{Phone: "+15550100", Code: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "u1", res.User.UserID)
	assert.Equal(t, model.UserRoleEmployer, res.User.Role)
	assert.Equal(t, "tok-abc", res.AccessToken)
}

func TestClient_ListJobsBuildsQuery(t *testing.T) {
	search := "backend"
	status := model.JobStatusActive

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("page_size"))
		assert.Equal(t, "backend", q.Get("search"))
		assert.Equal(t, "active", q.Get("status"))
		writeEnvelope(w, http.StatusOK, []model.Job{{JobID: "job-1", Title: "Backend Engineer"}})
	}, nil)

	jobs, err := client.ListJobs(context.Background(), model.ListJobsQuery{
		Page: 2, PageSize: 10, Search: &search, Status: &status,
	})

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
}

func TestClient_EvaluateNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no relevant candidates")
	}, nil)

	err := client.EvaluateScreening(context.Background(), "scr-1")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNoScreening(err))
}
