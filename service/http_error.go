package service

import (
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler registers the custom error handler on the echo instance.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMap(), logger).Handler
}

// NewErrorCodeToStatusCodeMap creates the error code to http status mapping.
// service_unavailable (circuit open) and all_instances_failed (failover
// exhausted) are kept distinct from the generic upstream_error.
func NewErrorCodeToStatusCodeMap() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrUpstreamError:       http.StatusBadGateway,
		ErrAllInstancesFailed:  http.StatusBadGateway,
		ErrServiceUnavailable:  http.StatusServiceUnavailable,
		ErrInternalServerError: http.StatusInternalServerError,
	}
}

// HTTPErrorHandler renders handler errors as JSON {error: {code, message}}.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMap map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMap,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	if status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Handler handles errors returned by echo handlers: echo's own HTTPErrors keep
// their status, everything else goes through FromDispatchError for the
// taxonomy mapping.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var statusCode int
	var gwErr *GatewayError
	if he, ok := err.(*echo.HTTPError); ok {
		m, _ := he.Message.(string)
		code := ErrInternalServerError
		if he.Code >= 400 && he.Code < 500 {
			code = ErrBadParameter
		}
		gwErr = NewGatewayError(code, m, err)
		statusCode = he.Code
	} else {
		gwErr = FromDispatchError(err)
		statusCode = h.getStatusCode(gwErr.Code)
	}

	level.Error(h.logger).Log(
		"msg", "HTTP request error",
		"code", gwErr.Code,
		"err", err,
	)

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(statusCode)
		} else {
			_ = c.JSON(statusCode, ErrResponse{Error: gwErr})
		}
	}
}

// ErrResponse from the gateway.
type ErrResponse struct {
	Error *GatewayError `json:"error,omitempty"`
}
