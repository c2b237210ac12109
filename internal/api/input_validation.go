package api

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

const minPasswordLength = 6

var (
	errInvalidEmail = errors.New("invalid email")
	errInvalidCPF   = errors.New("invalid cpf")
	errInvalidDate  = errors.New("invalid date")
)

func validateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return errInvalidEmail
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return errInvalidEmail
	}
	return nil
}

// normalizeCPF strips formatting punctuation and checks the canonical
// 11-digit shape. Checksum verification stays a client concern, as it was in
// the original product.
func normalizeCPF(raw string) (string, error) {
	var digits strings.Builder
	for _, ch := range raw {
		switch {
		case ch >= '0' && ch <= '9':
			digits.WriteRune(ch)
		case ch == '.' || ch == '-' || ch == ' ':
			// formatting only
		default:
			return "", errInvalidCPF
		}
	}
	normalized := digits.String()
	if len(normalized) != 11 {
		return "", errInvalidCPF
	}
	return normalized, nil
}

func parseDateParam(raw string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, errInvalidDate
	}
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, location)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return parsed, nil
}

func parseOptionalDateParam(raw string, location *time.Location) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parsed, err := parseDateParam(raw, location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
