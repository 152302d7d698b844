package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/bookcritic/data/dto"
	"github.com/emzola/bookcritic/internal/validator"
	"github.com/emzola/bookcritic/service"
)

// RegisterUser godoc
// @Summary Register a new user
// @Description This endpoint registers a new user. Usernames are case-insensitive and stored in lowercase.
// @Tags users
// @Accept  json
// @Produce json
// @Param body body dto.RegisterUserRequestBody true "JSON payload required to register a user"
// @Success 201 {object} data.User
// @Failure 400
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/users [post]
func (h *Handler) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.RegisterUserRequestBody
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
	user, err := h.service.RegisterUser(r.Context(), requestBody.Username, requestBody.Password, requestBody.ProfilePicture)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrUsernameTaken):
			h.usernameTakenResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/users/%s", user.Username))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"user": user}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowUser godoc
// @Summary Show a public profile
// @Description This endpoint shows a user's public profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} data.User
// @Failure 404
// @Failure 500
// @Router /v1/users/{username} [get]
func (h *Handler) showUserHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUserByUsername(r.Context(), h.readStringParam(r, "username"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
