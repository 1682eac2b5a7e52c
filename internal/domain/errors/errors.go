package errors

import (
	"net/http"

	"canopy/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DISABLED",
		"This account has been disabled",
		"",
	)

	// Party resolution errors
	ErrNoPartyLinked = NewBaseError(
		http.StatusForbidden,
		"NO_PARTY_LINKED",
		"No customer or supplier organization is linked to this account",
		"",
	)

	ErrNotACustomer = NewBaseError(
		http.StatusForbidden,
		"NOT_A_CUSTOMER",
		"This operation requires a customer organization",
		"",
	)

	ErrNotASupplier = NewBaseError(
		http.StatusForbidden,
		"NOT_A_SUPPLIER",
		"This operation requires a supplier organization",
		"",
	)

	// Request workflow errors
	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"Request not found",
		"",
	)

	ErrRequestAccessDenied = NewBaseError(
		http.StatusForbidden,
		"REQUEST_ACCESS_DENIED",
		"You are not a party to this request",
		"",
	)

	ErrRequestAlreadyResolved = NewBaseError(
		http.StatusConflict,
		"REQUEST_ALREADY_RESOLVED",
		"This request has already been responded to",
		"",
	)

	ErrUnknownRequestAction = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_REQUEST_ACTION",
		"Unrecognized request action",
		"",
	)

	// Land plot errors
	ErrPlotNotFound = NewBaseError(
		http.StatusNotFound,
		"PLOT_NOT_FOUND",
		"Land plot not found",
		"",
	)

	ErrPlotOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"PLOT_OWNERSHIP_VIOLATION",
		"You do not have access to this land plot",
		"",
	)

	ErrInvalidGeometry = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GEOMETRY",
		"Plot geometry is invalid",
		"",
	)

	// Questionnaire errors
	ErrQuestionnaireNotFound = NewBaseError(
		http.StatusNotFound,
		"QUESTIONNAIRE_NOT_FOUND",
		"Questionnaire not found",
		"",
	)

	ErrQuestionnaireAccessDenied = NewBaseError(
		http.StatusForbidden,
		"QUESTIONNAIRE_ACCESS_DENIED",
		"You are not a party to this questionnaire",
		"",
	)

	ErrQuestionnaireNotEditable = NewBaseError(
		http.StatusConflict,
		"QUESTIONNAIRE_NOT_EDITABLE",
		"This questionnaire can no longer be modified",
		"",
	)

	ErrMissingRequiredAnswers = NewBaseError(
		http.StatusBadRequest,
		"MISSING_REQUIRED_ANSWERS",
		"Required questions have not been answered",
		"",
	)

	ErrQuestionNotFound = NewBaseError(
		http.StatusNotFound,
		"QUESTION_NOT_FOUND",
		"Question not found in this questionnaire",
		"",
	)

	ErrNotAFileQuestion = NewBaseError(
		http.StatusBadRequest,
		"NOT_A_FILE_QUESTION",
		"This question does not accept file uploads",
		"",
	)

	// Profile errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Organization profile not found",
		"",
	)

	// Analysis errors
	ErrAnalysisUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ANALYSIS_UNAVAILABLE",
		"Deforestation analysis service is unavailable",
		"",
	)

	// Attachment errors
	ErrAttachmentTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"ATTACHMENT_TOO_LARGE",
		"Uploaded file exceeds the maximum allowed size",
		"",
	)

	ErrAttachmentNotFound = NewBaseError(
		http.StatusNotFound,
		"ATTACHMENT_NOT_FOUND",
		"Attachment not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
