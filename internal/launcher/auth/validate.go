package auth

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidationErrors is the ordered list of user-facing input problems
// collected from a single form submit. It is returned, never panicked.
type ValidationErrors []string

func (e ValidationErrors) Error() string {
	return strings.Join(e, "; ")
}

// Password rules. Every unmet rule yields its own message with the
// offending current count echoed back.
const (
	minPasswordLength = 20
	minUpperCount     = 2
	minDigitCount     = 5
	minSpecialCount   = 2
)

// specialChars mirrors the exact set the original launcher accepted.
const specialChars = "!@#$%^&*(),.?\":{}|<>_-+=[]\\/'`;~"

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

func validLogin(login string) bool {
	return loginPattern.MatchString(login)
}

// validEmail applies both suffix rules the launcher has historically
// accepted. The OR is intentional; do not "fix" it to a single rule.
func validEmail(email string) bool {
	return strings.HasSuffix(email, ".gmail.com") || strings.HasSuffix(email, "@gmail.com")
}

func passwordErrors(password string) ValidationErrors {
	var errs ValidationErrors

	if n := utf8.RuneCountInString(password); n < minPasswordLength {
		errs = append(errs, fmt.Sprintf("password must be at least %d characters (current: %d)", minPasswordLength, n))
	}

	var upper, digits, special int
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune(specialChars, r):
			special++
		}
	}

	if upper < minUpperCount {
		errs = append(errs, fmt.Sprintf("password must contain at least %d uppercase letters (current: %d)", minUpperCount, upper))
	}
	if digits < minDigitCount {
		errs = append(errs, fmt.Sprintf("password must contain at least %d digits (current: %d)", minDigitCount, digits))
	}
	if special < minSpecialCount {
		errs = append(errs, fmt.Sprintf("password must contain at least %d special characters (current: %d)", minSpecialCount, special))
	}
	return errs
}

// registrationErrors runs the structural validation phase for Register.
// Uniqueness against the stored collection is checked separately, and only
// when this phase passes.
func registrationErrors(login, email, password, confirm string) ValidationErrors {
	var errs ValidationErrors

	if login == "" {
		errs = append(errs, "enter login")
	} else if !validLogin(login) {
		errs = append(errs, "login must contain only latin letters and digits")
	}

	if email == "" {
		errs = append(errs, "enter email")
	} else if !validEmail(email) {
		errs = append(errs, "email must end with @gmail.com")
	}

	errs = append(errs, passwordErrors(password)...)

	if password != confirm {
		errs = append(errs, "passwords do not match")
	}
	return errs
}

// loginFormErrors checks the login form for missing fields. Both messages
// are collected when both fields are empty.
func loginFormErrors(login, password string) ValidationErrors {
	var errs ValidationErrors
	if login == "" {
		errs = append(errs, "enter login")
	}
	if password == "" {
		errs = append(errs, "enter password")
	}
	return errs
}
