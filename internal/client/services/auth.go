// Package services contains application services for the campusctl client.
// This file defines the authentication service: login, signup, logout and
// password-reset flows against the campus API, plus credential housekeeping.
package services

import (
	"context"
	"fmt"

	"github.com/opencampus/campusctl/internal/client/api"
	"github.com/opencampus/campusctl/internal/client/models"
	"github.com/opencampus/campusctl/internal/client/repositories/credentials"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server, persist the issued token, and
//     return the signed-in user.
//   - Signup: create a new account; no credential side effects.
//   - Logout: notify the server best-effort using the still-stored
//     credential, then clear the local credential unconditionally.
//   - RequestPasswordReset / ConfirmPasswordReset: plain remote calls.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (*models.User, error)
	Signup(ctx context.Context, email, password string) (*models.SignupResponse, error)
	Logout(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, pin, newPassword string) error
}

// authService is the concrete AuthService backed by the remote API client and
// the local credential store.
type authService struct {
	client api.Client
	store  credentials.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// credential store.
func NewAuthService(client api.Client, store credentials.Store) AuthService {
	return &authService{client: client, store: store}
}

// Login authenticates against the server and persists the issued token. On a
// save failure the error propagates and the session stays anonymous; a stale
// half-saved credential is worse than none.
func (a *authService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	resp, err := a.client.Login(ctx, identifier, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.store.Save(ctx, resp.AccessToken); err != nil {
		return nil, fmt.Errorf("credential saving error: %w", err)
	}

	return &models.User{
		ID:        resp.UserID,
		Email:     resp.Email,
		FullName:  resp.FullName,
		AvatarURL: resp.AvatarURL,
	}, nil
}

// Signup creates a new account on the server.
func (a *authService) Signup(ctx context.Context, email, password string) (*models.SignupResponse, error) {
	resp, err := a.client.Signup(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Logout notifies the server while the credential can still authenticate the
// call, then clears the local credential unconditionally. The remote call is
// best-effort: its failure is reported for logging, but the local clear runs
// regardless of the outcome.
func (a *authService) Logout(ctx context.Context) error {
	remoteErr := a.client.Logout(ctx)

	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("credential clear error: %w", err)
	}
	if remoteErr != nil {
		return fmt.Errorf("remote logout error: %w", remoteErr)
	}
	return nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	return a.client.ForgotPassword(ctx, email)
}

func (a *authService) ConfirmPasswordReset(ctx context.Context, email, pin, newPassword string) error {
	return a.client.ResetPassword(ctx, email, pin, newPassword)
}
