package bakery

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"
)

const (
	MinUsernameLength    = 3
	MinPasswordLength    = 6
	MinDisplayNameLength = 2
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// textLength counts UTF-16 code units, the length the page scripts see.
func textLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// IsValidEmail mirrors the application's email check.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// RegistrationForm is what a scenario types into the register page.
type RegistrationForm struct {
	Username    string
	Email       string
	Password    string
	Confirm     string
	AcceptTerms bool
}

// FieldErrors maps an error element identifier to the copy fragment it must
// contain.
type FieldErrors map[string]string

// ExpectedErrors predicts which error elements the register page shows for
// the form. An empty result means registration succeeds.
func (f RegistrationForm) ExpectedErrors() FieldErrors {
	errs := FieldErrors{}
	user := strings.TrimSpace(f.Username)
	switch {
	case user == "":
		errs[RegisterUsernameError] = CopyRequired
	case textLength(user) < MinUsernameLength:
		errs[RegisterUsernameError] = CopyMinLength3
	}

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs[RegisterEmailError] = CopyRequired
	case !IsValidEmail(email):
		errs[RegisterEmailError] = CopyValidEmail
	}

	switch {
	case f.Password == "":
		errs[RegisterPasswordError] = CopyRequired
	case textLength(f.Password) < MinPasswordLength:
		errs[RegisterPasswordError] = CopyMinLength6
	}

	switch {
	case f.Confirm == "":
		errs[RegisterConfirmError] = CopyRequired
	case f.Password != f.Confirm:
		errs[RegisterConfirmError] = CopyNoMatch
	}

	if !f.AcceptTerms {
		errs[RegisterError] = CopyTerms
	}
	return errs
}

// ExpectedLoginErrors predicts the field errors of a login attempt with
// missing input. Credential mismatches are reported separately.
func ExpectedLoginErrors(username, password string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(username) == "" {
		errs[LoginUsernameError] = CopyRequired
	}
	if password == "" {
		errs[LoginPasswordError] = CopyRequired
	}
	return errs
}

// PasswordStrength predicts the strength bar level from 0 to 5. The bar width
// is level x 20%.
func PasswordStrength(password string) int {
	level := 0
	n := textLength(password)
	if n >= 6 {
		level++
	}
	if n >= 10 {
		level++
	}
	if strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		level++
	}
	if strings.ContainsAny(password, "0123456789") {
		level++
	}
	if strings.IndexFunc(password, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) >= 0 {
		level++
	}
	return level
}

// PasswordWidth is the strength bar width for a level, e.g. "60%".
func PasswordWidth(level int) string {
	return fmt.Sprintf("%d%%", level*20)
}

// OrderNumberPattern matches the order number the checkout modal shows.
var OrderNumberPattern = regexp.MustCompile(regexp.QuoteMeta(CopyOrderPrefix) + `[0-9]{8}`)
