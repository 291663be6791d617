package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the error type rendered by the HTTP layer
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Summary Errors
func ErrEmptyTranscript() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_SUMMARY_EMPTY_TRANSCRIPT,
		Message:  "Meeting transcript is required",
	}
}

func ErrInvalidTranscriptFile(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_SUMMARY_INVALID_FILE,
		Message:  "Could not read transcript file",
	}
}

// AI Service Errors
func ErrAIAuthentication(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AI_AUTHENTICATION_FAILED,
		Message:  "Invalid API key. Please check the configured OpenAI API key.",
	}
}

func ErrAIRateLimited(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusTooManyRequests,
		Code:     ErrorCode_AI_RATE_LIMITED,
		Message:  "Rate limit exceeded. Please try again in a few moments.",
	}
}

func ErrAIAccessDenied(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_AI_ACCESS_DENIED,
		Message:  "API access forbidden. Please check your OpenAI account status.",
	}
}

func ErrAIService(status int, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_AI_SERVICE_ERROR,
		Message:  fmt.Sprintf("AI service error: %d. Please try again.", status),
	}.WithDetail("status_code", fmt.Sprintf("%d", status))
}

func ErrAIUnreachable(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_AI_SERVICE_UNAVAILABLE,
		Message:  "AI service unreachable",
	}
}

func ErrAIMalformedResponse(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_AI_MALFORMED_RESPONSE,
		Message:  "Invalid response from AI service",
	}
}

func ErrAIParseFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_AI_PARSE_FAILED,
		Message:  "Failed to parse AI response. Please try again.",
	}
}

func ErrAIInvalidStructure(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_AI_INVALID_STRUCTURE,
		Message:  "Invalid summary structure from AI",
	}
}

// Credential Errors
func ErrAPIKeyRequired() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_CREDENTIAL_REQUIRED,
		Message:  "OpenAI API key is required. Save one or pass api_key.",
	}
}

func ErrAPIKeyFormat() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_CREDENTIAL_INVALID,
		Message:  "Invalid API key format. OpenAI keys start with 'sk-'",
	}
}

func ErrCredentialStore(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_CREDENTIAL_STORE_FAILURE,
		Message:  "Credential store unavailable",
	}
}

// HTTPStatusOK represents a successful HTTP response.
func HTTPStatusOK(message string) AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_HTTP_OK,
		Message:  message,
	}
}
