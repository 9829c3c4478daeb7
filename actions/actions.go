// Package actions composes locator helpers into the user actions scenarios
// build on.
package actions

import (
	"fmt"
	"log/slog"

	"github.com/networkteam/bakery-e2e/bakery"
	"github.com/networkteam/bakery-e2e/fixture"
	"github.com/networkteam/bakery-e2e/session"
)

// Register opens the register page and submits a complete form for creds.
// The outcome is left to the caller.
func Register(s *session.Session, creds fixture.Credentials) error {
	return RegisterWith(s, creds.Form())
}

// RegisterWith opens the register page, fills the non-empty fields of form,
// checks terms if requested and submits.
func RegisterWith(s *session.Session, form bakery.RegistrationForm) error {
	if err := s.Open(bakery.PageRegister); err != nil {
		return err
	}

	fields := []struct {
		id    string
		value string
	}{
		{bakery.RegisterUsernameInput, form.Username},
		{bakery.RegisterEmailInput, form.Email},
		{bakery.RegisterPasswordInput, form.Password},
		{bakery.RegisterConfirmInput, form.Confirm},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := fill(s, f.id, f.value); err != nil {
			return fmt.Errorf("registering: %w", err)
		}
	}

	if form.AcceptTerms {
		terms, err := s.FindClickable(bakery.RegisterTermsCheckbox)
		if err != nil {
			return fmt.Errorf("registering: %w", err)
		}
		if err := terms.Check(); err != nil {
			return fmt.Errorf("registering: %w", err)
		}
	}

	if err := click(s, bakery.RegisterSubmitButton); err != nil {
		return fmt.Errorf("registering: %w", err)
	}
	s.Logger().Debug("Submitted registration", slog.String("username", form.Username))
	return nil
}

// Login opens the login page, fills both fields and submits.
func Login(s *session.Session, username, password string) error {
	if err := s.Open(bakery.PageLogin); err != nil {
		return err
	}
	if err := fill(s, bakery.LoginUsernameInput, username); err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	if err := fill(s, bakery.LoginPasswordInput, password); err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	if err := click(s, bakery.LoginSubmitButton); err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	s.Logger().Debug("Submitted login", slog.String("username", username))
	return nil
}

// EstablishSession registers a fresh user, logs in and waits for the
// dashboard. It returns the credentials used.
func EstablishSession(s *session.Session) (fixture.Credentials, error) {
	creds := fixture.NewCredentials()

	if err := Register(s, creds); err != nil {
		return creds, err
	}
	if err := s.WaitForPage(bakery.PageLogin); err != nil {
		return creds, fmt.Errorf("waiting for redirect after registration: %w", err)
	}
	if err := Login(s, creds.Username, creds.Password); err != nil {
		return creds, err
	}
	if err := s.WaitForPage(bakery.PageDashboard); err != nil {
		return creds, fmt.Errorf("waiting for redirect after login: %w", err)
	}
	if _, err := s.WaitForVisible(bakery.DashboardHeader); err != nil {
		return creds, err
	}

	s.Logger().Info("Session established", slog.String("username", creds.Username))
	return creds, nil
}

// OpenProfileMenu opens the profile dropdown unless it is already open.
func OpenProfileMenu(s *session.Session) error {
	if s.IsVisible(bakery.ProfileMenu) {
		return nil
	}
	if err := click(s, bakery.ProfileButton); err != nil {
		return fmt.Errorf("opening profile menu: %w", err)
	}
	if _, err := s.WaitForVisible(bakery.ProfileMenu); err != nil {
		return fmt.Errorf("opening profile menu: %w", err)
	}
	return nil
}

// Logout logs out through the profile menu and waits for the login page.
func Logout(s *session.Session) error {
	if err := OpenProfileMenu(s); err != nil {
		return err
	}
	if err := click(s, bakery.LogoutButton); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	if err := s.WaitForPage(bakery.PageLogin); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	return nil
}

func fill(s *session.Session, id, value string) error {
	el, err := s.FindClickable(id)
	if err != nil {
		return err
	}
	return el.Fill(value)
}

func click(s *session.Session, id string) error {
	el, err := s.FindClickable(id)
	if err != nil {
		return err
	}
	return el.Click()
}
