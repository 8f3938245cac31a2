package match

import "fmt"

// ValidationError reports unusable caller input: empty documents or inputs
// over the configured size limit. Callers can branch on it with errors.As.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConfigurationError reports an invalid Config. It is returned from New so
// misconfiguration fails at construction, never mid-analysis.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}
