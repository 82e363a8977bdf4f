package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireonhq/hireon-cli/pkg/model"
)

var validate = validator.New()

var loginCmd = &cobra.Command{
	Use:   "login <phone>",
	Short: "Request a one-time password for the phone number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := model.RequestOTPReq{Phone: args[0]}
		if err := validate.Struct(req); err != nil {
			return fmt.Errorf("invalid phone number (use E.164, e.g. +15550100)")
		}

		if err := app.API.RequestOTP(cmd.Context(), req); err != nil {
			app.Logger.Error("login: otp request failed", zap.Error(err))
			app.Alerts.Error("Could not send the code. Please try again.")
			return err
		}

		app.Alerts.Success(fmt.Sprintf("Code sent to %s. Verify with: hireon verify %s <code>", req.Phone, req.Phone))
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <phone> <code>",
	Short: "Verify the one-time password and start a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := model.VerifyOTPReq{Phone: args[0], Code: args[1]}
		if err := validate.Struct(req); err != nil {
			return fmt.Errorf("the code must be the 6 digits sent to your phone")
		}

		res, err := app.API.VerifyOTP(cmd.Context(), req)
		if err != nil {
			app.Logger.Warn("verify: otp rejected", zap.Error(err))
			app.Alerts.Error("That code didn't match. Request a new one with: hireon login")
			return err
		}

		if err := app.Session.Replace(cmd.Context(), res.User, res.AccessToken); err != nil {
			return err
		}

		app.Alerts.Success(fmt.Sprintf("Logged in as %s (%s)", res.User.Name, res.User.Role))
		return nil
	},
}

var (
	registerRole    string
	registerEmail   string
	registerCompany string
)

var registerCmd = &cobra.Command{
	Use:   "register <name> <phone>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := model.RegisterReq{
			Name:  args[0],
			Phone: args[1],
			Role:  model.UserRole(registerRole),
		}
		if registerEmail != "" {
			req.Email = &registerEmail
		}
		if registerCompany != "" {
			req.CompanyName = &registerCompany
		}
		if err := validate.Struct(req); err != nil {
			return fmt.Errorf("invalid registration: %w", err)
		}

		res, err := app.API.Register(cmd.Context(), req)
		if err != nil {
			app.Logger.Error("register: request failed", zap.Error(err))
			app.Alerts.Error("Could not create the account. Please try again.")
			return err
		}

		if err := app.Session.Replace(cmd.Context(), res.User, res.AccessToken); err != nil {
			return err
		}

		app.Alerts.Success(fmt.Sprintf("Welcome, %s! You are registered as a %s.", res.User.Name, res.User.Role))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// best-effort server revoke; the local session is cleared regardless
		if err := app.API.Logout(cmd.Context()); err != nil {
			app.Logger.Warn("logout: server revoke failed", zap.Error(err))
		}
		if err := app.Session.Clear(cmd.Context()); err != nil {
			return err
		}
		app.Alerts.Success("Logged out.")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerRole, "role", "seeker", "Account role: seeker or employer")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Contact email")
	registerCmd.Flags().StringVar(&registerCompany, "company", "", "Company name (employers)")
}
