package screening

import (
	"context"

	"github.com/hireonhq/hireon-cli/pkg/model"
)

// Gateway is the slice of the platform API the coordinator drives.
// *api.Client satisfies it; tests substitute a fake.
type Gateway interface {
	CreateScreening(ctx context.Context, req model.CreateScreeningReq) (*model.Screening, error)
	AddScreeningQuestions(ctx context.Context, req model.AddQuestionsReq) error
	AddCandidatesToScreening(ctx context.Context, req model.AddCandidatesReq) error
	GetScreeningStatuses(ctx context.Context, jobID string) (*model.ScreeningStatusRes, error)
	EvaluateScreening(ctx context.Context, screeningID string) error
}

// Alerter surfaces transient, auto-dismissing user notices. Every failure the
// coordinator does not classify as an expected-empty case goes through here.
type Alerter interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// Navigator is the screen transition surface. The coordinator only ever
// navigates forward to the shortlist and into question entry.
type Navigator interface {
	OpenQuestions(jobID, screeningID string)
	ShowShortlist(jobID, screeningID string)
}
