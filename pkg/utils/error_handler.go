package utils

import "fmt"

// ErrorHandler logs err under message and returns it wrapped, so callers
// can propagate a single annotated error. Nil passes through untouched.
func ErrorHandler(err error, message string) error {
	if err == nil {
		return nil
	}
	Logger.WithError(err).Error(message)
	return fmt.Errorf("%s: %w", message, err)
}
