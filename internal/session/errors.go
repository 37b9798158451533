package session

import "fmt"

const (
	CodeValidation = "validation"
	CodeNotFound   = "not_found"
	CodeExternal   = "external"
	CodeParse      = "parse"
)

// Error carries a machine code alongside the user-facing message. Validation
// errors are surfaced inline by the UI and never change state.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return newError(CodeValidation, message)
}

func NewExternalError(message string) error {
	return newError(CodeExternal, message)
}

func NewParseError(message string) error {
	return newError(CodeParse, message)
}
