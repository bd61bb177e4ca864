package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error codes
const (
	CodeSheetError = "SHEET_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeStore      = "STORE_ERROR"
	CodeDecode     = "DECODE_ERROR"
	CodeBadRequest = "BAD_REQUEST"
)

type SheetError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *SheetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SheetError) Unwrap() error {
	return e.Cause
}

func NewSheetError(message, code string, statusCode int, context map[string]any) *SheetError {
	return &SheetError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *SheetError) WithCause(cause error) *SheetError {
	e.Cause = cause
	return e
}

// ValidationError reports required fields that were missing or blank on input.
type ValidationError struct {
	*SheetError
	Fields []string
}

func NewValidationError(kind string, fields []string) *ValidationError {
	return &ValidationError{
		SheetError: &SheetError{
			Message:    fmt.Sprintf("missing required %s fields: %s", kind, strings.Join(fields, ", ")),
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"kind":   kind,
				"fields": fields,
			},
		},
		Fields: fields,
	}
}

type NotFoundError struct {
	*SheetError
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{
		SheetError: &SheetError{
			Message:    fmt.Sprintf("%s %q not found", kind, id),
			Code:       CodeNotFound,
			StatusCode: 404,
			Context: map[string]any{
				"kind": kind,
				"id":   id,
			},
		},
		Kind: kind,
		ID:   id,
	}
}

// StoreError wraps a failure of the underlying persistent store.
type StoreError struct {
	*SheetError
	Operation string
	Table     string
}

func NewStoreError(message, operation, table string, cause error) *StoreError {
	return &StoreError{
		SheetError: &SheetError{
			Message:    message,
			Code:       CodeStore,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"table":     table,
			},
			Cause: cause,
		},
		Operation: operation,
		Table:     table,
	}
}

// DecodeError describes a structured profile attribute that could not be parsed.
// It is recovered by the codec and never returned to store callers.
type DecodeError struct {
	*SheetError
	Attribute string
}

func NewDecodeError(attribute string, cause error) *DecodeError {
	return &DecodeError{
		SheetError: &SheetError{
			Message:    fmt.Sprintf("malformed %s blob", attribute),
			Code:       CodeDecode,
			StatusCode: 500,
			Context: map[string]any{
				"attribute": attribute,
			},
			Cause: cause,
		},
		Attribute: attribute,
	}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}

func IsStore(err error) bool {
	var target *StoreError
	return stderrors.As(err, &target)
}

// MissingFields returns the fields reported by a ValidationError in err's chain.
func MissingFields(err error) []string {
	var target *ValidationError
	if stderrors.As(err, &target) {
		return target.Fields
	}
	return nil
}

// StatusCode maps err to the HTTP status a caller should report. Unknown errors are 500.
func StatusCode(err error) int {
	if err == nil {
		return 200
	}
	if base := baseOf(err); base != nil && base.StatusCode != 0 {
		return base.StatusCode
	}
	return 500
}

// Code returns the error code carried by err, or CodeSheetError for untyped errors.
func Code(err error) string {
	if base := baseOf(err); base != nil && base.Code != "" {
		return base.Code
	}
	return CodeSheetError
}

// carrier is satisfied by SheetError and every type embedding it.
type carrier interface {
	base() *SheetError
}

func (e *SheetError) base() *SheetError {
	return e
}

func baseOf(err error) *SheetError {
	var c carrier
	if stderrors.As(err, &c) {
		return c.base()
	}
	return nil
}
