package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrCanceled is matched by every cancellation outcome returned from a form.
	ErrCanceled = errors.New("prompt canceled")

	// ErrInvalidOptions is matched by every configuration error.
	ErrInvalidOptions = errors.New("invalid prompt options")

	// ErrNoRenderScope is the panic value when an OffscreenBuffer is written to
	// outside a render pass.
	ErrNoRenderScope = errors.New("offscreen buffer written outside a render scope")

	// ErrRenderActive is returned by BeginRender while another scope is open.
	ErrRenderActive = errors.New("render scope already active")
)

// CanceledError reports that the user canceled a form.
type CanceledError struct {
	// Prompt names the form that was canceled, e.g. "MultiSelect".
	Prompt string
}

func (e *CanceledError) Error() string {
	if e.Prompt == "" {
		return ErrCanceled.Error()
	}
	return fmt.Sprintf("%s: %s", e.Prompt, ErrCanceled.Error())
}

// Is reports whether target is ErrCanceled.
func (e *CanceledError) Is(target error) bool {
	return target == ErrCanceled
}

// OptionError reports an invalid form configuration. It is returned before
// anything is drawn.
type OptionError struct {
	Prompt string
	Field  string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Prompt, e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidOptions.
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOptions
}

func optionError(prompt, field, format string, args ...any) error {
	return &OptionError{Prompt: prompt, Field: field, Reason: fmt.Sprintf(format, args...)}
}

var errValueRequired = errors.New("value is required")
