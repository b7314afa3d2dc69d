// Package api implements the remote endpoint calls, one file per resource.
// Each function takes the shared gateway client explicitly so tests can
// substitute a transport pointed at a mock server.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/errs"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/types"
)

// Login exchanges credentials for a bearer token and profile.
// Endpoint: POST /auth/login
func Login(ctx context.Context, rc *resty.Client, email, password string) (*types.LoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(types.LoginRequest{Email: email, Password: password}).
		Post("/auth/login")
	if err != nil {
		return nil, errs.FromTransport("login", err)
	}
	if resp.IsError() {
		return nil, errs.FromResponse("login", resp.StatusCode(), resp.Body())
	}
	var lr types.LoginResponse
	if err := json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

// Register creates a new account. The server does not log the account in;
// success carries no body the client needs.
// Endpoint: POST /auth/register
func Register(ctx context.Context, rc *resty.Client, email, password, fullName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resp, err := rc.R().
		SetContext(ctx).
		SetBody(types.RegisterRequest{Email: email, Password: password, FullName: fullName}).
		Post("/auth/register")
	if err != nil {
		return errs.FromTransport("register", err)
	}
	if resp.IsError() {
		return errs.FromResponse("register", resp.StatusCode(), resp.Body())
	}
	return nil
}

// VerifySession checks the stored credential against the server. The bearer
// header is attached by the gateway.
// Endpoint: GET /auth/me
func VerifySession(ctx context.Context, rc *resty.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resp, err := rc.R().SetContext(ctx).Get("/auth/me")
	if err != nil {
		return errs.FromTransport("verify session", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return errs.FromResponse("verify session", resp.StatusCode(), resp.Body())
	}
	return nil
}
