package handler

import (
	"net/http"

	"github.com/emzola/bookcritic/data/dto"
)

// CreateChallenge godoc
// @Summary Request a challenge
// @Description This endpoint issues a single-use question that must be answered when submitting a review
// @Tags challenges
// @Produce json
// @Success 201 {object} dto.ChallengeResponse
// @Router /v1/challenges [post]
func (h *Handler) createChallengeHandler(w http.ResponseWriter, r *http.Request) {
	token, prompt := h.service.CreateChallenge()
	err := h.encodeJSON(w, http.StatusCreated, envelope{"challenge": dto.ChallengeResponse{Token: token, Prompt: prompt}}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
