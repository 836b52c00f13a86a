package cli

import (
	"context"

	"github.com/UhCardoso/travel-manager-front/internal/client/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) promptPassword(prompt string) (string, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer clear(pw)
	return string(pw), nil
}

// Login shows the user login view, prompts for credentials and signs in.
// On success the client lands on the user's home route.
func (a *App) Login(ctx context.Context) error {
	if !a.enter(ctx, router.PathHome) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}

	u, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}
	printlnFn("Welcome, " + u.Name + "!")
	a.landing(ctx)
	return nil
}

// Register shows the sign-up view. When the backend returns a session the
// new user is signed in right away.
func (a *App) Register(ctx context.Context) error {
	if !a.enter(ctx, router.PathRegister) {
		return nil
	}

	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}
	confirmation, err := a.promptPassword("Confirm password")
	if err != nil {
		return err
	}

	u, err := a.authService.Register(ctx, name, email, password, confirmation)
	if err != nil {
		return err
	}

	if !a.isLoggedIn() {
		printlnFn("Account created, please log in.")
		a.goTo(ctx, router.PathHome)
		return nil
	}
	printlnFn("Welcome, " + u.Name + "!")
	a.landing(ctx)
	return nil
}

// AdminLogin shows the administrator login view.
func (a *App) AdminLogin(ctx context.Context) error {
	if !a.enter(ctx, router.PathAdminLogin) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Admin email", a.out)
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Admin password")
	if err != nil {
		return err
	}

	u, err := a.authService.AdminLogin(ctx, email, password)
	if err != nil {
		return err
	}
	printlnFn("Welcome, " + u.Name + "!")
	a.landing(ctx)
	return nil
}

// Logout ends the session locally even when the backend cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You are not signed in.")
		return nil
	}
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out.")
	a.goTo(ctx, router.PathHome)
	return nil
}
