package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireonhq/hireon-cli/internal/screening"
	"github.com/hireonhq/hireon-cli/internal/ui"
	"github.com/hireonhq/hireon-cli/pkg/model"
)

var screeningCmd = &cobra.Command{
	Use:   "screening",
	Short: "Run AI screenings over a job's candidate pool",
	Long: `Run AI screenings over a job's candidate pool.

The workflow: start a screening, add up to three yes/no questions, assign the
relevant candidates, watch their statuses, then evaluate to produce the
shortlist.`,
}

var screeningTitle string

var screeningStartCmd = &cobra.Command{
	Use:   "start <job-id>",
	Short: "Create a screening for the job's relevant candidates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireEmployer(); err != nil {
			return err
		}

		jobID := args[0]
		applicants, err := app.API.GetApplicants(cmd.Context(), jobID)
		if err != nil {
			app.Logger.Error("screening: applicants fetch failed", zap.String("job_id", jobID), zap.Error(err))
			app.Alerts.Error("Could not load applicants. Please try again.")
			return err
		}

		var relevant []string
		for _, a := range applicants {
			if a.IsRelevant() {
				relevant = append(relevant, a.CandidateID)
			}
		}

		title := screeningTitle
		if title == "" {
			title = "AI screening"
		}
		return app.Coord.CreateScreening(cmd.Context(), jobID, title, relevant)
	},
}

var questionFlags []string

var screeningQuestionsCmd = &cobra.Command{
	Use:   "questions <job-id>",
	Short: "Save the screening questions (max 3) and assign candidates",
	Long: `Save the screening questions and assign the relevant candidates.

Each --q takes "question text=Yes" or "question text=No", the ideal answer an
AI-screened candidate should give. Without --q, shows the saved questions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireEmployer(); err != nil {
			return err
		}
		jobID := args[0]

		if len(questionFlags) == 0 {
			questions, err := app.Coord.EditQuestions(jobID)
			if err != nil {
				return err
			}
			if len(questions) == 0 {
				app.Alerts.Info("No questions saved yet. Add up to three with --q \"<text>=Yes|No\".")
				return nil
			}
			for i, q := range questions {
				fmt.Printf("%d. %s (ideal: %s)\n", i+1, q.QuestionText, q.IdealAnswer)
			}
			return nil
		}

		if len(questionFlags) > model.MaxScreeningQuestions {
			return fmt.Errorf("a screening takes at most %d questions", model.MaxScreeningQuestions)
		}

		questions := make([]model.ScreeningQuestion, 0, len(questionFlags))
		for _, raw := range questionFlags {
			text, answer, ok := strings.Cut(raw, "=")
			if !ok {
				return fmt.Errorf("question %q must end with =Yes or =No", raw)
			}
			questions = append(questions, model.ScreeningQuestion{
				QuestionText: strings.TrimSpace(text),
				IdealAnswer:  model.IdealAnswer(strings.TrimSpace(answer)),
			})
		}

		if err := app.Coord.SaveQuestions(cmd.Context(), jobID, questions); err != nil {
			return err
		}
		app.Alerts.Success("Questions saved and candidates assigned. Screening started.")
		return nil
	},
}

var screeningAssignCmd = &cobra.Command{
	Use:   "assign <job-id>",
	Short: "Assign the job's relevant candidates to its screening",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireEmployer(); err != nil {
			return err
		}

		jobID := args[0]
		applicants, err := app.API.GetApplicants(cmd.Context(), jobID)
		if err != nil {
			app.Logger.Error("screening: applicants fetch failed", zap.String("job_id", jobID), zap.Error(err))
			app.Alerts.Error("Could not load applicants. Please try again.")
			return err
		}

		return app.Coord.EnterRelevantFilter(cmd.Context(), jobID, applicants)
	},
}

var screeningStatusCmd = &cobra.Command{
	Use:   "status <job-id>",
	Short: "Fetch per-candidate screening progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireEmployer(); err != nil {
			return err
		}

		jobID := args[0]
		if err := app.Coord.RefreshStatuses(cmd.Context(), jobID); err != nil {
			return err
		}

		snap := app.Coord.Snapshot(jobID)
		if snap.State == screening.StateNoScreening || len(snap.Statuses) == 0 {
			app.Alerts.Info("Screening has not started for this job yet.")
			return nil
		}
		ui.RenderStatuses(snap.Statuses)
		return nil
	},
}

var screeningEvaluateCmd = &cobra.Command{
	Use:   "evaluate <job-id>",
	Short: "Evaluate the screening and show the shortlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireEmployer(); err != nil {
			return err
		}
		return app.Coord.Evaluate(cmd.Context(), args[0])
	},
}

var screeningShortlistCmd = &cobra.Command{
	Use:   "shortlist <job-id>",
	Short: "Show the evaluated shortlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireEmployer(); err != nil {
			return err
		}

		jobID := args[0]
		snap := app.Coord.Snapshot(jobID)
		if snap.ScreeningID == "" {
			if err := app.Coord.RefreshStatuses(cmd.Context(), jobID); err != nil {
				return err
			}
			snap = app.Coord.Snapshot(jobID)
		}
		if snap.ScreeningID == "" {
			app.Alerts.Info("Screening has not started for this job yet.")
			return nil
		}

		app.ShowShortlist(jobID, snap.ScreeningID)
		return nil
	},
}

func init() {
	screeningStartCmd.Flags().StringVar(&screeningTitle, "title", "", "Screening title")
	screeningQuestionsCmd.Flags().StringArrayVar(&questionFlags, "q", nil, `Question as "<text>=Yes|No" (repeatable, max 3)`)

	screeningCmd.AddCommand(
		screeningStartCmd,
		screeningQuestionsCmd,
		screeningAssignCmd,
		screeningStatusCmd,
		screeningEvaluateCmd,
		screeningShortlistCmd,
	)
}
