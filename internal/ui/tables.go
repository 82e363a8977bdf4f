package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/hireonhq/hireon-cli/pkg/model"
)

func RenderJobs(jobs []model.Job) {
	data := pterm.TableData{{"ID", "Title", "Status", "Location", "Posted"}}
	for _, j := range jobs {
		location := ""
		if j.Location != nil {
			location = *j.Location
		}
		data = append(data, []string{
			j.JobID,
			j.Title,
			string(j.Status),
			location,
			j.CreatedAt.Format("2006-01-02"),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func RenderApplicants(applicants []model.Applicant) {
	data := pterm.TableData{{"ID", "Name", "Skills", "Relevant", "Score", "Applied"}}
	for _, a := range applicants {
		applied := ""
		if a.AppliedAt != nil {
			applied = a.AppliedAt.Format(time.DateOnly)
		}
		data = append(data, []string{
			a.CandidateID,
			a.Name,
			strings.Join(a.Skills, ", "),
			string(a.RelevantCandidate),
			fmt.Sprintf("%.1f", a.RelevantScore),
			applied,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func RenderStatuses(statuses map[string]model.CandidateStatus) {
	data := pterm.TableData{{"Candidate", "Status"}}
	for id, st := range statuses {
		data = append(data, []string{id, string(st)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func RenderShortlist(shortlist []model.ShortlistedCandidate) {
	data := pterm.TableData{{"Candidate", "Name", "Email", "Score", "Status"}}
	for _, s := range shortlist {
		email := ""
		if s.Email != nil {
			email = *s.Email
		}
		score := "-"
		if s.Score != nil {
			score = fmt.Sprintf("%.1f", *s.Score)
		}
		data = append(data, []string{s.CandidateID, s.Name, email, score, string(s.Status)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
