package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/octa-app/fengshui-backend/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

var codeStatuses = map[string]int{
	"invalid_input":            http.StatusBadRequest,
	"invalid_date":             http.StatusBadRequest,
	"invalid_request":          http.StatusBadRequest,
	"invalid_token":            http.StatusUnauthorized,
	"invalid_credentials":      http.StatusUnauthorized,
	"unauthorized":             http.StatusUnauthorized,
	"user_not_found":           http.StatusNotFound,
	"profile_not_found":        http.StatusNotFound,
	"report_not_found":         http.StatusNotFound,
	"not_found":                http.StatusNotFound,
	"email_exists":             http.StatusConflict,
	"account_linking_disabled": http.StatusConflict,
	"geocode_error":            http.StatusBadGateway,
	"analysis_error":           http.StatusBadGateway,
	"llm_error":                http.StatusBadGateway,
	"auth_not_configured":      http.StatusServiceUnavailable,
}

// abortWithDomainError maps pkg/errors codes onto HTTP statuses. Unknown
// codes surface as a 500.
func abortWithDomainError(c *gin.Context, err error) {
	code := apperrors.Code(err)
	status, ok := codeStatuses[code]
	if !ok {
		status = http.StatusInternalServerError
		if code == "" {
			code = "internal_error"
		}
	}
	abortWithError(c, NewHTTPError(status, code, err.Error(), err))
}
