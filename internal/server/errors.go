package server

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
)

// StatusError carries the HTTP status to answer with
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err == nil {
		return http.StatusText(e.Code)
	}
	return e.Err.Error()
}

func (e StatusError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status of the error
func (e StatusError) StatusCode() int {
	if e.Code == 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type errorResponse struct {
	Error string         `json:"error"`
	Code  apperrors.Code `json:"code,omitempty"`
}

// statusFor maps an error code to an HTTP status
func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidTemplate,
		apperrors.ErrCodeInvalidPalette,
		apperrors.ErrCodeInvalidSize,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidPath,
		apperrors.ErrCodeInvalidSource:
		return http.StatusBadRequest
	case apperrors.ErrCodeBusy, apperrors.ErrCodeNotReady:
		return http.StatusConflict
	case apperrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case apperrors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var se StatusError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &se):
		status = se.StatusCode()
	case errors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
	default:
		status = statusFor(apperrors.GetCode(err))
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "status", status, "err", err)
	}

	writeJSON(w, status, errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  apperrors.GetCode(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
