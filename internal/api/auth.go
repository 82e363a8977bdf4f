package api

import (
	"context"
	"net/http"

	"github.com/hireonhq/hireon-cli/pkg/model"
)

// RequestOTP asks the platform to send a one-time password to the phone.
// Issuance and verification are entirely server-side.
func (c *Client) RequestOTP(ctx context.Context, req model.RequestOTPReq) error {
	return c.do(ctx, http.MethodPost, "/auth/otp/request", req, nil)
}

// VerifyOTP exchanges phone+code for the session record and access token.
func (c *Client) VerifyOTP(ctx context.Context, req model.VerifyOTPReq) (*model.AuthRes, error) {
	var res model.AuthRes
	if err := c.do(ctx, http.MethodPost, "/auth/otp/verify", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates a new account and returns a fresh session.
func (c *Client) Register(ctx context.Context, req model.RegisterReq) (*model.AuthRes, error) {
	var res model.AuthRes
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout revokes the current token server-side. A 401 here is harmless; the
// local session is cleared regardless by the caller.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// GetProfile fetches the current user's profile.
func (c *Client) GetProfile(ctx context.Context) (*model.UserDetails, error) {
	var res model.UserDetails
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateProfile applies a partial profile update and returns the full
// replacement record.
func (c *Client) UpdateProfile(ctx context.Context, req model.UpdateProfileReq) (*model.UserDetails, error) {
	var res model.UserDetails
	if err := c.do(ctx, http.MethodPatch, "/profile", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteAccount permanently removes the account.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/profile", nil, nil)
}
