package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SanitizeString trims whitespace from user input
func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}

// ValidateEmail checks the email format
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// ValidateMobileNumber checks the mobile number format (digits, 10-15, optional +)
func ValidateMobileNumber(mobile string) (bool, string) {
	if mobile == "" {
		return false, "Mobile number is required"
	}
	matched, _ := regexp.MatchString(`^\+?[0-9]{10,15}$`, mobile)
	if !matched {
		return false, "Invalid mobile number format"
	}
	return true, ""
}
