// Package fixture generates per-scenario test data.
package fixture

import (
	"strings"

	"github.com/gofrs/uuid"

	"github.com/networkteam/bakery-e2e/bakery"
)

// DefaultPassword satisfies every password rule of the application.
const DefaultPassword = "password123"

// Credentials of a user account.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// Known is the reference user from the registration walkthrough. It is not
// unique, so scenarios that log in use NewCredentials instead.
var Known = Credentials{
	Username: "testuser",
	Email:    "test@email.com",
	Password: DefaultPassword,
}

// NewCredentials returns credentials no other scenario uses.
func NewCredentials() Credentials {
	suffix := strings.ReplaceAll(uuid.Must(uuid.NewV7()).String(), "-", "")
	// The random part of a v7 UUID sits at the end.
	suffix = suffix[len(suffix)-10:]

	username := "user" + suffix
	return Credentials{
		Username: username,
		Email:    username + "@example.com",
		Password: DefaultPassword,
	}
}

// Form turns the credentials into a complete, valid registration form.
func (c Credentials) Form() bakery.RegistrationForm {
	return bakery.RegistrationForm{
		Username:    c.Username,
		Email:       c.Email,
		Password:    c.Password,
		Confirm:     c.Password,
		AcceptTerms: true,
	}
}
