package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/mesto-cli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (models.Credentials, error) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return models.Credentials{}, err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{Email: email, Password: password}, nil
}

// Register prompts for credentials and attempts to create an account.
// The outcome (success or failure) is reported through the notifier.
func (a *App) Register(ctx context.Context) error {
	creds, err := a.readCredentials()
	if err != nil {
		return err
	}
	return a.session.Register(ctx, creds)
}

// Login prompts for credentials and authenticates. On success the session
// controller hydrates the profile and cards before returning.
func (a *App) Login(ctx context.Context) error {
	creds, err := a.readCredentials()
	if err != nil {
		return err
	}
	if err := a.session.Login(ctx, creds); err != nil {
		return err
	}
	printlnFn("Signed in as " + a.session.Email())
	return nil
}

// Logout drops the persisted token and returns to the unauthenticated state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out.")
	return nil
}

// Whoami prints the identity and profile of the current session.
func (a *App) Whoami(ctx context.Context) error {
	printlnFn("Signed in as " + a.session.Email())
	if u := a.session.User(); u != nil {
		printlnFn(u.Name + " — " + u.About)
	}
	return nil
}
