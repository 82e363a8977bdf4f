package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireonhq/hireon-cli/internal/api"
	"github.com/hireonhq/hireon-cli/internal/config"
	"github.com/hireonhq/hireon-cli/internal/logger"
	"github.com/hireonhq/hireon-cli/internal/screening"
	"github.com/hireonhq/hireon-cli/internal/session"
	"github.com/hireonhq/hireon-cli/internal/ui"
	"github.com/hireonhq/hireon-cli/pkg/model"
)

// application wires the client engine together: config, logger, the session
// store, the API gateway, and the screening coordinator. Commands reach it
// through the package-level app built in PersistentPreRunE.
type application struct {
	Config  *config.Config
	Logger  *zap.Logger
	Session *session.Store
	API     *api.Client
	Coord   *screening.Coordinator
	Alerts  *ui.Alert
}

var app *application

var rootCmd = &cobra.Command{
	Use:   "hireon",
	Short: "Hireon job marketplace client",
	Long: `hireon — terminal client for the Hireon job marketplace.

Job seekers browse and apply; employers post jobs, review applicants, and run
AI screenings over their candidate pool.

Examples:
  hireon login +15550100          # request an OTP
  hireon verify +15550100 123456  # verify and start a session
  hireon jobs list                # list your jobs
  hireon applicants <job-id> --filter relevant
  hireon screening start <job-id> --title "Backend round 1"
  hireon screening evaluate <job-id>`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		log, err := logger.NewLogger(cfg.Env)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		store, err := session.Open(cfg.Session.Path)
		if err != nil {
			return err
		}

		client := api.NewClient(cfg.API.BaseURL, cfg.API.UserAgent, cfg.API.Timeout, store)
		alerts := ui.NewAlert()

		app = &application{
			Config:  cfg,
			Logger:  log,
			Session: store,
			API:     client,
			Alerts:  alerts,
		}
		app.Coord = screening.NewCoordinator(client, alerts, app, log)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			_ = app.Logger.Sync()
			_ = app.Session.Close()
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, verifyCmd, registerCmd, logoutCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(applicantsCmd)
	rootCmd.AddCommand(screeningCmd)
}

// OpenQuestions implements screening.Navigator. In the terminal shell the
// questions screen is its own command, so navigation is a pointer to it.
func (a *application) OpenQuestions(jobID, screeningID string) {
	a.Alerts.Success(fmt.Sprintf("Screening %s is ready. Add questions with: hireon screening questions %s", screeningID, jobID))
}

// ShowShortlist implements screening.Navigator: fetch and render the
// shortlist screen.
func (a *application) ShowShortlist(jobID, screeningID string) {
	shortlist, err := a.API.GetShortlistedCandidates(context.Background(), screeningID)
	if err != nil {
		a.Logger.Error("shortlist: fetch failed",
			zap.String("job_id", jobID),
			zap.String("screening_id", screeningID),
			zap.Error(err),
		)
		a.Alerts.Error("Could not load the shortlist. Please try again.")
		return
	}
	ui.RenderShortlist(shortlist)
}

// requireSession blocks commands that need a logged-in user.
func requireSession() (*model.UserDetails, error) {
	user := app.Session.Current()
	if user == nil {
		return nil, errors.New("not logged in — run: hireon login <phone>")
	}
	if app.Session.Expired() {
		return nil, errors.New("session expired — run: hireon login <phone>")
	}
	return user, nil
}

// requireEmployer additionally checks the session role.
func requireEmployer() (*model.UserDetails, error) {
	user, err := requireSession()
	if err != nil {
		return nil, err
	}
	if user.Role != model.UserRoleEmployer {
		return nil, errors.New("this command is only available to employer accounts")
	}
	return user, nil
}
