// Package validate checks form input before it is sent to the backend.
package validate

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\d{8}$`)
)

// FieldError ties a validation message to the form field it belongs to.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Registration holds the raw values of the sign-up form.
type Registration struct {
	Name            string
	Nickname        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

// PasswordReset holds the raw values of the password recovery form.
type PasswordReset struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// Email reports whether the address looks like user@host.tld.
func Email(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// Password reports whether the password has at least six characters,
// one uppercase letter and one digit.
func Password(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}

// Phone reports whether the number is exactly eight digits.
func Phone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// CheckRegistration validates the sign-up form and returns one error
// per failing field, in display order.
func CheckRegistration(form Registration) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(form.Nickname) == "" {
		errs = append(errs, FieldError{Field: "nickname", Message: "nickname is required"})
	}
	if !Email(form.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "enter a valid email address"})
	}
	if !Password(form.Password) {
		errs = append(errs, FieldError{Field: "password", Message: "at least 6 characters with an uppercase letter and a digit"})
	}
	if form.Password != form.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}
	if !Phone(form.Phone) {
		errs = append(errs, FieldError{Field: "phone", Message: "phone must be exactly 8 digits"})
	}
	return errs
}

// CheckPasswordReset validates the recovery form.
func CheckPasswordReset(form PasswordReset) []FieldError {
	var errs []FieldError
	if !Email(form.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "enter a valid email address"})
	}
	if !Password(form.Password) {
		errs = append(errs, FieldError{Field: "password", Message: "at least 6 characters with an uppercase letter and a digit"})
	}
	if form.Password != form.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}
	return errs
}

// ByField indexes field errors by field name for inline display.
func ByField(errs []FieldError) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}
