package db

import "strings"

// IsUniqueViolation reports whether the provided error references a unique
// constraint violation. When columnName is provided, the helper looks for the
// column text in the error message.
func IsUniqueViolation(err error, columnName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if columnName != "" && !strings.Contains(msg, columnName) {
		return false
	}
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
