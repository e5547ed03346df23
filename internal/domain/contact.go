package domain

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"
)

var (
	ErrInvalidName  = errors.New("name is required and must be at most 200 characters")
	ErrInvalidPhone = errors.New("phone must contain 7 to 15 digits")
	ErrInvalidEmail = errors.New("email is not a valid address")
	ErrNotesTooLong = errors.New("notes must be at most 500 characters")
)

// ValidateName checks a customer name
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxNameLength {
		return ErrInvalidName
	}
	return nil
}

// ValidatePhone accepts digits with optional leading +, spaces, dashes and parentheses
func ValidatePhone(phone string) error {
	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return ErrInvalidPhone
		}
	}
	if digits < 7 || digits > 15 {
		return ErrInvalidPhone
	}
	return nil
}

// ValidateEmail checks a bare address ("user@host"), display names are rejected
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address, ".") {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateNotes checks optional free-form notes
func ValidateNotes(notes *string) error {
	if notes != nil && len([]rune(*notes)) > MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}
