package utils

import (
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseIntPtr returns nil when the value is empty or not a number.
func ParseIntPtr(value string) *int {
	if value == "" {
		return nil
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &result
}

// ParseBoolPtr accepts true/false/1/0, anything else is treated as unset.
func ParseBoolPtr(value string) *bool {
	if value == "" {
		return nil
	}
	result, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return nil
	}
	return &result
}

// StringPtr returns nil for empty strings
func StringPtr(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// NormalizeMobile strips every non-digit. Numbers shorter than 10 digits are rejected.
func NormalizeMobile(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	mobile := b.String()
	if len(mobile) < 10 || len(mobile) > 15 {
		return mobile, false
	}
	return mobile, true
}
