package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SSN format `999-99-9999`
var ssnRegex = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)

func IsValidSSN(ssn string) bool {
	return ssnRegex.MatchString(ssn)
}

// Phone format `(999)999-9999`
var phoneRegex = regexp.MustCompile(`^\(\d{3}\)\d{3}-\d{4}$`)

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

var stateRegex = regexp.MustCompile(`^[A-Z]{2}$`)

func IsValidState(state string) bool {
	return stateRegex.MatchString(state)
}

// ZIP, plain or ZIP+4
var zipRegex = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

func IsValidZip(zip string) bool {
	return zipRegex.MatchString(zip)
}

// IsValidDate parses a 2006-01-02 date string.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}
