package utils

import "strings"

// ValidatePassword checks password strength for account password changes.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}
	if strings.TrimSpace(password) != password {
		return false, "Password must not start or end with spaces"
	}
	return true, ""
}

// SanitizeInput trims free-text input and strips null bytes before it is
// stored or echoed back.
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}
