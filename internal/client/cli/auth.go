package cli

import (
	"context"
	"fmt"
)

// getSimpleText, getPassword and getMultiline are indirections to the
// interactive input helpers so tests can script answers.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for a username, an optional email and a password and
// creates the account. It does not log in.
func (a *App) Register(ctx context.Context, _ []string) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.client.Register(ctx, userName, email, password)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "user registered", "username", u.Username)
	fmt.Fprintf(a.out, "Registered %s (id %d). Use 'login' to sign in.\n", u.Username, u.DatabaseID)
	return nil
}

// Login authenticates and resolves the user record that owns new notes.
func (a *App) Login(ctx context.Context, _ []string) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.client.Login(ctx, userName, password); err != nil {
		a.logger.Warn(ctx, "login unsuccessful", "username", userName, "error", err)
		return err
	}

	u, err := a.client.FindUser(ctx, userName)
	if err != nil {
		a.client.Logout()
		return fmt.Errorf("looking up user: %w", err)
	}
	a.user = u

	a.logger.Info(ctx, "login successful", "username", u.Username)
	fmt.Fprintf(a.out, "Logged in as %s\n", u.Username)
	return nil
}

// Logout forgets the tokens and the current user.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.client.Logout()
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
