package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Upload and generation errors
	CodeMissingInput         ErrorCode = "MISSING_INPUT"
	CodeUnreadableDocument   ErrorCode = "UNREADABLE_DOCUMENT"
	CodeNoQuestionsGenerated ErrorCode = "NO_QUESTIONS_GENERATED"
)

// User-visible messages for the upload failure classes.
const (
	MsgNoFileUploaded      = "No file uploaded"
	MsgNoFileSelected      = "No file selected"
	MsgUnreadableDocument  = "PDF text is empty. Is it scanned?"
	MsgNoQuestionsProduced = "Could not generate questions."
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair that is echoed back in error responses.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewMissingInputError(message string) *DomainError {
	return NewError(CodeMissingInput, message, nil)
}

func NewUnreadableDocumentError(filename string) *DomainError {
	return NewError(CodeUnreadableDocument, MsgUnreadableDocument, nil).
		WithContext("filename", filename)
}

func NewNoQuestionsGeneratedError(filename string) *DomainError {
	return NewError(CodeNoQuestionsGenerated, MsgNoQuestionsProduced, nil).
		WithContext("filename", filename)
}

// ValidationError describes a single rejected request field.
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors collects every field that failed validation.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field, message string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingInput, Message: message}
}

func NewOutOfRangeError(field string, value, min, max int64) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value),
	}
}
