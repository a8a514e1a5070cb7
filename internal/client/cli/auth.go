package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/opencampus/campusctl/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and tries to authenticate. On success the
// session transitions to authenticated and the prompt picks up the identity.
// On failure the session stays anonymous and the reason is shown. The
// password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, identifier, string(password)); err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		fmt.Println("Login failed:", userMessage(err))
		return err
	}

	fmt.Println("Welcome back!")
	return nil
}

// Register prompts for an email and password and attempts to create a new
// account. On success the user is directed to the login prompt; registering
// never signs the user in by itself.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Signup(ctx, email, string(password)); err != nil {
		a.log.Error(ctx, "signup failed", "error", err)
		fmt.Println("Signup failed:", userMessage(err))
		return err
	}

	fmt.Println("Account created! Type 'login' to sign in.")
	return nil
}

// Forgot requests a password-reset PIN for the given email.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		a.log.Error(ctx, "password reset request failed", "error", err)
		fmt.Println("Request failed:", userMessage(err))
		return err
	}

	fmt.Println("If the address is registered, a reset PIN is on its way.")
	return nil
}

// Reset confirms a password reset with the emailed PIN.
func (a *App) Reset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	pin, err := getSimpleText(a.reader, "Enter the reset PIN", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.ConfirmPasswordReset(ctx, email, pin, string(password)); err != nil {
		a.log.Error(ctx, "password reset failed", "error", err)
		fmt.Println("Reset failed:", userMessage(err))
		return err
	}

	fmt.Println("Password updated. Type 'login' to sign in.")
	return nil
}

// Logout ends the session. Teardown is local-first and always succeeds from
// the user's point of view.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}
