package model

import "strings"

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// IsBlank reports whether s is nil, empty or only whitespace.
func IsBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
