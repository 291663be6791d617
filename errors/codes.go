package errors

import "strconv"

// ErrorCode identifies an application error in API responses
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1002
	ErrorCode_NOT_FOUND         ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005

	// Summary
	ErrorCode_SUMMARY_EMPTY_TRANSCRIPT ErrorCode = 2000
	ErrorCode_SUMMARY_INVALID_FILE     ErrorCode = 2001

	// AI service
	ErrorCode_AI_AUTHENTICATION_FAILED ErrorCode = 3000
	ErrorCode_AI_RATE_LIMITED          ErrorCode = 3001
	ErrorCode_AI_ACCESS_DENIED         ErrorCode = 3002
	ErrorCode_AI_SERVICE_ERROR         ErrorCode = 3003
	ErrorCode_AI_SERVICE_UNAVAILABLE   ErrorCode = 3004
	ErrorCode_AI_MALFORMED_RESPONSE    ErrorCode = 3005
	ErrorCode_AI_PARSE_FAILED          ErrorCode = 3006
	ErrorCode_AI_INVALID_STRUCTURE     ErrorCode = 3007

	// Credentials
	ErrorCode_CREDENTIAL_REQUIRED      ErrorCode = 4000
	ErrorCode_CREDENTIAL_INVALID       ErrorCode = 4001
	ErrorCode_CREDENTIAL_STORE_FAILURE ErrorCode = 4002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:              "UNSPECIFIED",
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_PERMISSION_DENIED:        "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:          "UNAUTHENTICATED",
	ErrorCode_SUMMARY_EMPTY_TRANSCRIPT: "SUMMARY_EMPTY_TRANSCRIPT",
	ErrorCode_SUMMARY_INVALID_FILE:     "SUMMARY_INVALID_FILE",
	ErrorCode_AI_AUTHENTICATION_FAILED: "AI_AUTHENTICATION_FAILED",
	ErrorCode_AI_RATE_LIMITED:          "AI_RATE_LIMITED",
	ErrorCode_AI_ACCESS_DENIED:         "AI_ACCESS_DENIED",
	ErrorCode_AI_SERVICE_ERROR:         "AI_SERVICE_ERROR",
	ErrorCode_AI_SERVICE_UNAVAILABLE:   "AI_SERVICE_UNAVAILABLE",
	ErrorCode_AI_MALFORMED_RESPONSE:    "AI_MALFORMED_RESPONSE",
	ErrorCode_AI_PARSE_FAILED:          "AI_PARSE_FAILED",
	ErrorCode_AI_INVALID_STRUCTURE:     "AI_INVALID_STRUCTURE",
	ErrorCode_CREDENTIAL_REQUIRED:      "CREDENTIAL_REQUIRED",
	ErrorCode_CREDENTIAL_INVALID:       "CREDENTIAL_INVALID",
	ErrorCode_CREDENTIAL_STORE_FAILURE: "CREDENTIAL_STORE_FAILURE",
}

// String returns the code name, or the number for unknown codes
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}
