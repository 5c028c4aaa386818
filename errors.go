package taginput

import "fmt"

// ConfigError reports an invalid tag descriptor. Parsing itself is total
// over all string inputs; registry construction is the only place this
// package can fail, and it fails there before any parsing begins.
type ConfigError struct {
	Name    string // Name of the offending descriptor, if known
	Field   string // Descriptor field that is invalid
	Message string // What is wrong with it
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid tag descriptor %q: %s: %s", e.Name, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid tag descriptor: %s: %s", e.Field, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(name, field, message string) *ConfigError {
	return &ConfigError{Name: name, Field: field, Message: message}
}
