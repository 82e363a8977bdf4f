package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireonhq/hireon-cli/internal/candidates"
	"github.com/hireonhq/hireon-cli/internal/ui"
)

var applicantsFilter string

// The candidate review screen: fetch applicants once, then arrange them with
// the pure presenter. Filtering is a read; screening assignment only happens
// through the explicit screening commands.
var applicantsCmd = &cobra.Command{
	Use:   "applicants <job-id>",
	Short: "Review applicants for a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireEmployer(); err != nil {
			return err
		}

		filter := candidates.Filter(applicantsFilter)
		if !candidates.ValidFilter(filter) {
			return fmt.Errorf("unknown filter %q (use all, relevant, or latest)", applicantsFilter)
		}

		jobID := args[0]
		applicants, err := app.API.GetApplicants(cmd.Context(), jobID)
		if err != nil {
			app.Logger.Error("applicants: fetch failed", zap.String("job_id", jobID), zap.Error(err))
			app.Alerts.Error("Could not load applicants. Please try again.")
			return err
		}

		arranged := candidates.Arrange(applicants, filter)
		if len(arranged) == 0 {
			app.Alerts.Info("No applicants for this view yet.")
			return nil
		}

		ui.RenderApplicants(arranged)

		if filter == candidates.FilterRelevant {
			// read-only reconcile: show screening progress for this view,
			// but never assign as a side effect of looking at a list
			if err := app.Coord.RefreshStatuses(cmd.Context(), jobID); err != nil {
				return err
			}
			snap := app.Coord.Snapshot(jobID)
			if len(snap.Statuses) > 0 {
				ui.RenderStatuses(snap.Statuses)
			}
		}
		return nil
	},
}

func init() {
	applicantsCmd.Flags().StringVar(&applicantsFilter, "filter", "all", "View: all, relevant, or latest")
}
