package deckgen

import (
	"fmt"
)

// RenderError represents a failure while producing the output file.
type RenderError struct {
	// Component is the pipeline stage that failed: "render" or "write".
	Component string
	// Err is the underlying cause.
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("deck %s failed: %v", e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(component string, err error) *RenderError {
	return &RenderError{
		Component: component,
		Err:       err,
	}
}
