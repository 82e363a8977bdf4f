package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireonhq/hireon-cli/internal/ui"
	"github.com/hireonhq/hireon-cli/pkg/model"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(); err != nil {
			return err
		}

		user, err := app.API.GetProfile(cmd.Context())
		if err != nil {
			app.Logger.Error("profile: fetch failed", zap.Error(err))
			app.Alerts.Error("Could not load your profile. Please try again.")
			return err
		}

		data := pterm.TableData{
			{"Name", user.Name},
			{"Phone", user.Phone},
			{"Role", string(user.Role)},
			{"Status", string(user.Status)},
		}
		if user.Email != nil {
			data = append(data, []string{"Email", *user.Email})
		}
		if user.CompanyName != nil {
			data = append(data, []string{"Company", *user.CompanyName})
		}
		return pterm.DefaultTable.WithData(data).Render()
	},
}

var (
	profileName    string
	profileEmail   string
	profileCompany string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(); err != nil {
			return err
		}

		var req model.UpdateProfileReq
		if profileName != "" {
			req.Name = &profileName
		}
		if profileEmail != "" {
			req.Email = &profileEmail
		}
		if profileCompany != "" {
			req.CompanyName = &profileCompany
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		user, err := app.API.UpdateProfile(cmd.Context(), req)
		if err != nil {
			app.Logger.Error("profile: update failed", zap.Error(err))
			app.Alerts.Error("Could not update your profile. Please try again.")
			return err
		}

		// profile updates replace the whole session record
		if err := app.Session.Replace(cmd.Context(), *user, app.Session.AccessToken()); err != nil {
			return err
		}

		app.Alerts.Success("Profile updated.")
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Permanently delete the account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(); err != nil {
			return err
		}

		if !ui.Confirm("This permanently deletes your account and all data. Continue?") {
			app.Alerts.Info("Account deletion cancelled.")
			return nil
		}

		if err := app.API.DeleteAccount(cmd.Context()); err != nil {
			app.Logger.Error("profile: delete failed", zap.Error(err))
			app.Alerts.Error("Could not delete the account. Please try again.")
			return err
		}

		if err := app.Session.Clear(cmd.Context()); err != nil {
			return err
		}
		app.Alerts.Success("Account deleted.")
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "Contact email")
	profileUpdateCmd.Flags().StringVar(&profileCompany, "company", "", "Company name (employers)")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, profileDeleteCmd)
}
