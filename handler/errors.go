package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/bookcritic/internal/jsonlog"
	"github.com/emzola/bookcritic/service"
)

// requestLogger returns a logger carrying the request id, when there is one.
func (h *Handler) requestLogger(r *http.Request) *jsonlog.Logger {
	if id := h.contextGetRequestID(r); id != "" {
		return h.logger.With(map[string]string{"request_id": id})
	}
	return h.logger
}

func (h *Handler) logError(r *http.Request, err error) {
	h.requestLogger(r).PrintError(err, map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
	})
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	env := envelope{"error": message}
	err := h.encodeJSON(w, status, env, nil)
	if err != nil {
		h.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	h.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (h *Handler) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	h.errorResponse(w, r, http.StatusNotFound, message)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	h.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (h *Handler) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// failedValidationResponse writes the field messages carried by err, or err's
// text when it carries none.
func (h *Handler) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, verr.Errors)
		return
	}
	h.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
}

func (h *Handler) validationErrorsResponse(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	h.errorResponse(w, r, http.StatusUnprocessableEntity, errs)
}

func (h *Handler) duplicateReviewResponse(w http.ResponseWriter, r *http.Request) {
	message := "you have already reviewed this book"
	h.errorResponse(w, r, http.StatusConflict, message)
}

func (h *Handler) usernameTakenResponse(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, http.StatusConflict, map[string]string{"username": "username already taken"})
}

func (h *Handler) failedChallengeResponse(w http.ResponseWriter, r *http.Request) {
	message := "the challenge answer is wrong or the challenge has expired, please request a new one"
	h.errorResponse(w, r, http.StatusForbidden, message)
}

func (h *Handler) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	message := "rate limit exceeded"
	h.errorResponse(w, r, http.StatusTooManyRequests, message)
}

func (h *Handler) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	message := "invalid authentication credentials"
	h.errorResponse(w, r, http.StatusUnauthorized, message)
}

func (h *Handler) invalidAuthenticationTokenResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	message := "invalid or missing authentication token"
	h.errorResponse(w, r, http.StatusUnauthorized, message)
}

func (h *Handler) authenticationRequiredResponse(w http.ResponseWriter, r *http.Request) {
	message := "you must be authenticated to access this resource"
	h.errorResponse(w, r, http.StatusUnauthorized, message)
}
