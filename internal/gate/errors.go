package gate

import "fmt"

// ConfigError represents an invalid gate configuration
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gate config error: %s", e.Message)
}
