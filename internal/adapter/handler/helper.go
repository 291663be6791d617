package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID reads X-Request-ID from the request, falling back to the one
// the RequestID middleware set on the response
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// toAppError maps use case and AI client errors onto API errors
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var svcErr *pkgai.ServiceError
	var parseErr *usecaseErrors.ParseError

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrEmptyTranscript):
		return errors.ErrEmptyTranscript()
	case stdErrors.Is(err, usecaseErrors.ErrAPIKeyRequired):
		return errors.ErrAPIKeyRequired()
	case stdErrors.Is(err, usecaseErrors.ErrAPIKeyFormat):
		return errors.ErrAPIKeyFormat()
	case stdErrors.Is(err, usecaseErrors.ErrCredentialStoreDown):
		return errors.ErrCredentialStore(err)
	case stdErrors.Is(err, pkgai.ErrAuthentication):
		return errors.ErrAIAuthentication(err)
	case stdErrors.Is(err, pkgai.ErrRateLimited):
		return errors.ErrAIRateLimited(err)
	case stdErrors.Is(err, pkgai.ErrAccessDenied):
		return errors.ErrAIAccessDenied(err)
	case stdErrors.As(err, &svcErr):
		return errors.ErrAIService(svcErr.StatusCode, err)
	case stdErrors.Is(err, pkgai.ErrRequestFailed):
		return errors.ErrAIUnreachable(err)
	case stdErrors.Is(err, pkgai.ErrMalformedResponse):
		return errors.ErrAIMalformedResponse(err)
	case stdErrors.As(err, &parseErr):
		return errors.ErrAIParseFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidSummaryStructure):
		return errors.ErrAIInvalidStructure(err)
	default:
		return errors.ErrInternal(err)
	}
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status_code", appErr.HTTPCode),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}
