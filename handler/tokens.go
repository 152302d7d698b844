package handler

import (
	"errors"
	"net/http"

	"github.com/emzola/bookcritic/data/dto"
	"github.com/emzola/bookcritic/internal/validator"
	"github.com/emzola/bookcritic/service"
)

// CreateAuthenticationToken godoc
// @Summary Login
// @Description This endpoint logs in a user by creating a user authentication token
// @Tags tokens
// @Accept  json
// @Produce json
// @Param body body dto.CreateAuthenticationTokenRequestBody true "JSON payload required to create an authentication token"
// @Success 201 {object} data.Token
// @Failure 400
// @Failure 401
// @Failure 422
// @Failure 500
// @Router /v1/tokens/authentication [post]
func (h *Handler) createAuthenticationTokenHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateAuthenticationTokenRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	v := validator.New()
	if v.Struct(requestBody); !v.Valid() {
		h.validationErrorsResponse(w, r, v.Errors)
		return
	}
	token, err := h.service.CreateAuthenticationToken(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			h.invalidCredentialsResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusCreated, envelope{"authentication_token": token}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteAuthenticationToken godoc
// @Summary Logout
// @Description This endpoint logs out a user by deleting their authentication tokens
// @Tags tokens
// @Produce json
// @Param token header string true "Bearer token"
// @Success 200
// @Failure 401
// @Failure 500
// @Router /v1/tokens/authentication [delete]
func (h *Handler) deleteAuthenticationTokenHandler(w http.ResponseWriter, r *http.Request) {
	user := h.contextGetUser(r)
	err := h.service.DeleteAuthenticationTokens(r.Context(), user.ID)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "you have been logged out"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
