package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const MinPasswordLen = 8

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?\d+$`)
)

// The validators take any so they plug into both huh and survey prompts.

func ValidateRequired(field string) func(any) error {
	return func(val any) error {
		s, err := asString(val)
		if err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func ValidateEmail(val any) error {
	email, err := asString(val)
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("please enter a valid email address")
	}
	return nil
}

// ValidatePassword requires MinPasswordLen characters with at least one
// upper case letter, one lower case letter and one digit.
func ValidatePassword(val any) error {
	password, err := asString(val)
	if err != nil {
		return err
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must contain upper case, lower case and a number")
	}
	return nil
}

// ValidatePhone accepts digits with an optional leading '+'. Empty is allowed.
func ValidatePhone(val any) error {
	phone, err := asString(val)
	if err != nil {
		return err
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("phone number may only contain digits and a leading +")
	}
	return nil
}

func asString(val any) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("value must be a string")
	}
	return s, nil
}
