package cli

import (
	"fmt"
	"time"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateYear validates a grid year argument
func ValidateYear(year int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("year %d out of range (must be 1-9999)", year)
	}
	return nil
}

// ValidateMonth validates a grid month argument
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range (must be 1-12)", month)
	}
	return nil
}

// ValidateTimeZone validates a time zone identifier
func ValidateTimeZone(name string) error {
	if name == "" {
		return nil
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
