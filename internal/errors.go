package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation      ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound        ErrorType = "NOT_FOUND"
	ErrorTypeUnauthenticated ErrorType = "UNAUTHENTICATED"
	ErrorTypeForbidden       ErrorType = "FORBIDDEN"
	ErrorTypeConflict        ErrorType = "CONFLICT"
	ErrorTypeInternal        ErrorType = "INTERNAL_ERROR"
	ErrorTypeUpstream        ErrorType = "UPSTREAM_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"
	ErrCodeBudgetOutOfRange ErrorCode = "BUDGET_OUT_OF_RANGE"
	ErrCodeCompletionRange  ErrorCode = "COMPLETION_OUT_OF_RANGE"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeRoleMismatch       ErrorCode = "ROLE_MISMATCH"
	ErrCodeAccountDeactivated ErrorCode = "ACCOUNT_DEACTIVATED"
	ErrCodeAccountGone        ErrorCode = "ACCOUNT_GONE"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeWeakPassword       ErrorCode = "WEAK_PASSWORD"

	ErrCodeDuplicateEmail   ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeAccountNotFound  ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrCodeEmployeeNotFound ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeTaskNotFound     ErrorCode = "TASK_NOT_FOUND"
	ErrCodeProjectNotFound  ErrorCode = "PROJECT_NOT_FOUND"
	ErrCodeChatNotFound     ErrorCode = "CHAT_NOT_FOUND"

	ErrCodeAlreadyCheckedIn ErrorCode = "ALREADY_CHECKED_IN"
	ErrCodeNotCheckedIn     ErrorCode = "NOT_CHECKED_IN"

	ErrCodeAssistantFailed ErrorCode = "ASSISTANT_UNAVAILABLE"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok && len(validationErrors.Errors) > 0 {
			return validationErrors.Errors[0].Message
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) GetDetailedMessage() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok {
			if len(validationErrors.Errors) == 1 {
				return validationErrors.Errors[0].Message
			} else if len(validationErrors.Errors) > 1 {
				messages := make([]string, len(validationErrors.Errors))
				for i, err := range validationErrors.Errors {
					messages[i] = err.Message
				}
				return strings.Join(messages, "; ")
			}
		}
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthenticatedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthenticated,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstream,
		Code:       ErrCodeAssistantFailed,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
