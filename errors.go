package cctk

import (
	"errors"
	"fmt"
)

// ErrMissingSource is returned if an input source (grammar file, token stream,
// regex definitions) is unavailable.
var ErrMissingSource = errors.New("missing input source")

// ConfigurationError is returned for malformed input sources: grammar files,
// token streams or regular expression definitions.
type ConfigurationError struct {
	Cause      error
	SourceName string
	Line       int
}

// ConfigError creates a ConfigurationError for a line of a named source.
// Line numbers start at 1; 0 means "no line information".
func ConfigError(source string, line int, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		Cause:      fmt.Errorf(format, args...),
		SourceName: source,
		Line:       line,
	}
}

func (e *ConfigurationError) Error() string {
	var src string
	if e.SourceName != "" {
		src = e.SourceName + ": "
	}
	if e.Line == 0 {
		return fmt.Sprintf("%serror: %v", src, e.Cause)
	}
	return fmt.Sprintf("%s%d: error: %v", src, e.Line, e.Cause)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
