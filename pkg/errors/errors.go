// Package errors provides structured error reporting for the search field.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates a construction-time failure.
	KindInit
	// KindResource indicates a missing or undecodable resource such as an icon.
	KindResource
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindTask indicates a failure around the background search task.
	KindTask
	// KindDispatch indicates a callback could not be scheduled on the UI thread.
	KindDispatch
	// KindConfig indicates an invalid configuration value.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindResource:
		return "resource"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindTask:
		return "task"
	case KindDispatch:
		return "dispatch"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// WidgetError represents a structured error raised by the widget or its collaborators.
type WidgetError struct {
	// Op is the operation that failed (e.g., "icons.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Resource names the file or icon involved, if applicable.
	Resource string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s [%s] resource=%s: %v", e.Op, e.Kind, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "task.Spawn").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the widget.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WidgetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
