package scheduling

import "fmt"

// ConfigurationError reports scheduling settings that are structurally
// unusable, such as an inverted daily window or a missing timezone.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewConfigurationError(field, msg string) error {
	return &ConfigurationError{
		Field:   field,
		Message: msg,
	}
}

// ValidationError reports malformed request input, such as a date range
// that does not parse or runs backwards.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{
		Field:   field,
		Message: msg,
	}
}
