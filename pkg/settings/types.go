// Package settings holds the call settings a LiveKit video-calling client
// reads when it connects and publishes video.
//
// A Store carries the connection region and a set of named selectable
// settings. Each setting is a SelectableList: an ordered set of labeled
// options with exactly one active selection. The default store contains a
// single "resolution" setting with five presets.
//
// The store is constructed explicitly and passed to whatever needs it:
//
//	store := settings.NewDefaultStore()
//	if err := store.SetSelected(settings.Resolution, 4); err != nil {
//		return err
//	}
//	size, _ := store.CurrentSize(settings.Resolution) // 1280x720
package settings

// Logger interface for pluggable logging.
// The fields parameter accepts key-value pairs for structured logging.
type Logger interface {
	// Debug logs a debug-level message with optional fields.
	Debug(msg string, fields ...interface{})

	// Info logs an info-level message with optional fields.
	Info(msg string, fields ...interface{})

	// Warn logs a warning-level message with optional fields.
	Warn(msg string, fields ...interface{})

	// Error logs an error-level message with optional fields.
	Error(msg string, fields ...interface{})
}

// Error represents a typed error with a code and message.
// Error codes are stable and can be used for programmatic error handling.
type Error struct {
	// Code is a stable identifier for the error type.
	Code string

	// Message provides human-readable error details.
	Message string
}

// Error implements the error interface.
// Returns a string in the format "CODE: message".
func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Errors returned by the store. They are wrapped with context at the call
// site; use errors.Is to check for them.
var (
	// ErrNotFound indicates an unknown setting name or option label.
	ErrNotFound = &Error{Code: "SETTING_NOT_FOUND", Message: "setting not found"}

	// ErrOutOfRange indicates a selection index outside the option list.
	ErrOutOfRange = &Error{Code: "OUT_OF_RANGE", Message: "index out of range"}

	// ErrValueType indicates the selected value is not of the requested type.
	ErrValueType = &Error{Code: "VALUE_TYPE", Message: "unexpected value type"}
)
