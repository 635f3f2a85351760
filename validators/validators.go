// Package validators holds the pure input validation rules for registration
// and to-do payloads. Validation stops at the first violated rule and returns
// a descriptive error; no database access happens here.
package validators

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const passwordSymbols = "!@#$%^&*"

// IsValidEmail reports whether s is shaped like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether s is at least 8 characters long and
// contains at least one digit, one lowercase letter, one uppercase letter
// and one of !@#$%^&*. Go's regexp has no lookahead, so the character
// classes are collected in a single scan.
func IsValidPassword(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	return hasDigit && hasLower && hasUpper && hasSymbol
}

// UserData is the registration payload.
type UserData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ValidateUserData checks a registration payload. Rules are evaluated in a
// fixed order and the first violation wins.
func ValidateUserData(d UserData) error {
	if d.Username == "" {
		return errors.New("username is missing")
	}
	if d.Email == "" {
		return errors.New("email is missing")
	}
	if d.Password == "" {
		return errors.New("password is missing")
	}
	// lengths count runes, not bytes, so multi-byte names are not penalized
	if n := utf8.RuneCountInString(d.Username); n < 5 || n > 50 {
		return errors.New("username length must be between 5 and 50 characters")
	}
	if n := utf8.RuneCountInString(d.Email); n < 5 || n > 50 {
		return errors.New("email length must be between 5 and 50 characters")
	}
	if n := utf8.RuneCountInString(d.Password); n < 8 || n > 50 {
		return errors.New("password length must be between 8 and 50 characters")
	}
	if !IsValidEmail(d.Email) {
		return errors.New("email address is of invalid format, please check and try again")
	}
	if !IsValidPassword(d.Password) {
		return errors.New("Password must contain at least 1 special character, 1 upper and 1 lower case letters and 1 number, it should be minimum 8 letters long")
	}
	return nil
}

// TodoData is the create-todo payload. Description is optional.
type TodoData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ValidateTodoData checks a to-do payload, first violation wins.
func ValidateTodoData(d TodoData) error {
	if d.Title == "" {
		return errors.New("Missing title, please check and try again")
	}
	if utf8.RuneCountInString(d.Title) < 3 {
		return errors.New("Invalid title length, Title should be at least 3 characters long, please check and try again")
	}
	if utf8.RuneCountInString(d.Title) > 100 {
		return errors.New("Invalid title length, Title should be at most 100 characters long, please check and try again")
	}
	if utf8.RuneCountInString(d.Description) > 1000 {
		return errors.New("Invalid description length, Description should be at most 1000 characters long, please check and try again")
	}
	return nil
}
