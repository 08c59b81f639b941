package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Country IDs are lowercase slugs derived from country names
	validIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that a country ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateQuery validates search query strings
func ValidateQuery(query string) error {
	// Empty queries are allowed
	if query == "" {
		return nil
	}

	if len(query) > 200 {
		return errors.New("query too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}

// ValidateLimit validates a result-count limit
func ValidateLimit(limit int) error {
	if limit < 1 {
		return errors.New("limit must be positive")
	}

	if limit > 250 {
		return errors.New("limit too large (max 250)")
	}

	return nil
}

// ValidateOrder validates a rankings sort order
func ValidateOrder(order string) error {
	if order != "highest" && order != "lowest" {
		return errors.New("order must be highest or lowest")
	}
	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateAndSanitizeQuery validates and sanitizes a search query
func ValidateAndSanitizeQuery(query string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		return "", err
	}

	return SanitizeInput(query), nil
}
