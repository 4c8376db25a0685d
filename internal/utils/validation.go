package utils

import (
	"errors"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// Country codes and indicator names: alphanumeric, underscore, hyphen.
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ValidateCountry validates that a country code is safe and within
// reasonable limits.
func ValidateCountry(code string) error {
	if code == "" {
		return errors.New("country cannot be empty")
	}

	if len(code) > 64 {
		return errors.New("country too long (max 64 characters)")
	}

	if !validIDPattern.MatchString(code) {
		return errors.New("country contains invalid characters")
	}

	return nil
}

// ValidateIndicator validates that an indicator name is safe and within
// reasonable limits.
func ValidateIndicator(name string) error {
	if name == "" {
		return errors.New("indicator cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("indicator too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(name) {
		return errors.New("indicator contains invalid characters")
	}

	return nil
}
