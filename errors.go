package hlist

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNoDispatcher is returned by Mount when no Dispatcher is supplied.
	// Page results cannot reach the UI goroutine without one.
	ErrNoDispatcher = errors.New("hlist: mount requires a dispatcher")

	// ErrLoaderPanic wraps the value recovered from a panicking loader.
	ErrLoaderPanic = errors.New("hlist: loader panicked")
)

// ConfigurationError rejects a list configuration before anything is drawn.
// It is developer facing: Suggestion says how to fix the configuration.
type ConfigurationError struct {
	Message    string
	Suggestion string
}

func (e *ConfigurationError) Error() string {
	if e.Suggestion == "" {
		return "hlist: " + e.Message
	}
	return fmt.Sprintf("hlist: %s (%s)", e.Message, e.Suggestion)
}

func newConfigurationError(message, suggestion string) *ConfigurationError {
	return &ConfigurationError{Message: message, Suggestion: suggestion}
}

// LoadError is a failed page request. The list keeps it in ListState.Err and
// offers a retry for the same page.
type LoadError struct {
	Page int
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("hlist: load page %d: %v", e.Page, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// RenderLookupError reports an item that could not be rendered: its kind is
// missing from the registry, or the render function returned nil. Only the
// affected row falls back.
type RenderLookupError struct {
	Kind  string
	Index int
}

func (e *RenderLookupError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("hlist: item %d rendered nothing", e.Index)
	}
	return fmt.Sprintf("hlist: item %d: no renderer registered for kind %q", e.Index, e.Kind)
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsLoadError checks if an error is a load error.
func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}

// IsRenderLookupError checks if an error is a render lookup error.
func IsRenderLookupError(err error) bool {
	var lookupErr *RenderLookupError
	return errors.As(err, &lookupErr)
}
