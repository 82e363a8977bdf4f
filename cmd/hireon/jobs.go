package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireonhq/hireon-cli/internal/ui"
	"github.com/hireonhq/hireon-cli/pkg/model"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and manage job postings",
}

var (
	jobsSearch   string
	jobsStatus   string
	jobsPage     int
	jobsPageSize int
)

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(); err != nil {
			return err
		}

		query := model.ListJobsQuery{Page: jobsPage, PageSize: jobsPageSize}
		if jobsSearch != "" {
			query.Search = &jobsSearch
		}
		if jobsStatus != "" {
			status := model.JobStatus(jobsStatus)
			query.Status = &status
		}

		jobs, err := app.API.ListJobs(cmd.Context(), query)
		if err != nil {
			app.Logger.Error("jobs: list failed", zap.Error(err))
			app.Alerts.Error("Could not load jobs. Please try again.")
			return err
		}
		if len(jobs) == 0 {
			app.Alerts.Info("No jobs found.")
			return nil
		}

		ui.RenderJobs(jobs)
		return nil
	},
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show one job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(); err != nil {
			return err
		}

		job, err := app.API.GetJob(cmd.Context(), args[0])
		if err != nil {
			app.Logger.Error("jobs: fetch failed", zap.String("job_id", args[0]), zap.Error(err))
			app.Alerts.Error("Could not load the job. Please try again.")
			return err
		}

		data := pterm.TableData{
			{"ID", job.JobID},
			{"Title", job.Title},
			{"Status", string(job.Status)},
		}
		if job.Location != nil {
			data = append(data, []string{"Location", *job.Location})
		}
		if job.SalaryMin != nil && job.SalaryMax != nil {
			data = append(data, []string{"Salary", fmt.Sprintf("%d – %d", *job.SalaryMin, *job.SalaryMax)})
		}
		return pterm.DefaultTable.WithData(data).Render()
	},
}

var (
	postSalaryMin int
	postSalaryMax int
	postLocation  string
)

var jobsPostCmd = &cobra.Command{
	Use:   "post <title>",
	Short: "Post a new job (enters review as pending)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireEmployer(); err != nil {
			return err
		}

		req := model.PostJobReq{Title: args[0]}
		if postSalaryMin > 0 {
			req.SalaryMin = &postSalaryMin
		}
		if postSalaryMax > 0 {
			req.SalaryMax = &postSalaryMax
		}
		if postLocation != "" {
			req.Location = &postLocation
		}
		if err := validate.Struct(req); err != nil {
			return fmt.Errorf("invalid posting: %w", err)
		}

		job, err := app.API.PostJob(cmd.Context(), req)
		if err != nil {
			app.Logger.Error("jobs: post failed", zap.Error(err))
			app.Alerts.Error("Could not post the job. Please try again.")
			return err
		}

		app.Alerts.Success(fmt.Sprintf("Job %s posted and sent for review.", job.JobID))
		return nil
	},
}

var (
	updateTitle    string
	updateLocation string
)

var jobsUpdateCmd = &cobra.Command{
	Use:   "update <job-id>",
	Short: "Update a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireEmployer(); err != nil {
			return err
		}

		var req model.UpdateJobReq
		if updateTitle != "" {
			req.Title = &updateTitle
		}
		if updateLocation != "" {
			req.Location = &updateLocation
		}
		if err := validate.Struct(req); err != nil {
			return fmt.Errorf("invalid update: %w", err)
		}

		job, err := app.API.UpdateJob(cmd.Context(), args[0], req)
		if err != nil {
			app.Logger.Error("jobs: update failed", zap.String("job_id", args[0]), zap.Error(err))
			app.Alerts.Error("Could not update the job. Please try again.")
			return err
		}

		app.Alerts.Success(fmt.Sprintf("Job %s updated.", job.JobID))
		return nil
	},
}

var jobsCloseCmd = &cobra.Command{
	Use:   "close <job-id>",
	Short: "Close a posting early",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireEmployer(); err != nil {
			return err
		}

		if err := app.API.CloseJob(cmd.Context(), args[0]); err != nil {
			app.Logger.Error("jobs: close failed", zap.String("job_id", args[0]), zap.Error(err))
			app.Alerts.Error("Could not close the job. Please try again.")
			return err
		}
		app.Alerts.Success("Job closed.")
		return nil
	},
}

func init() {
	jobsListCmd.Flags().StringVar(&jobsSearch, "search", "", "Filter by title")
	jobsListCmd.Flags().StringVar(&jobsStatus, "status", "", "Filter by status: pending|active|rejected|expired")
	jobsListCmd.Flags().IntVar(&jobsPage, "page", 1, "Page number")
	jobsListCmd.Flags().IntVar(&jobsPageSize, "page-size", 20, "Results per page")

	jobsPostCmd.Flags().IntVar(&postSalaryMin, "salary-min", 0, "Minimum salary")
	jobsPostCmd.Flags().IntVar(&postSalaryMax, "salary-max", 0, "Maximum salary")
	jobsPostCmd.Flags().StringVar(&postLocation, "location", "", "Job location")

	jobsUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	jobsUpdateCmd.Flags().StringVar(&updateLocation, "location", "", "New location")

	jobsCmd.AddCommand(jobsListCmd, jobsShowCmd, jobsPostCmd, jobsUpdateCmd, jobsCloseCmd)
}
