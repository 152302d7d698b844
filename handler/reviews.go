package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/bookcritic/data/dto"
	"github.com/emzola/bookcritic/internal/validator"
	"github.com/emzola/bookcritic/service"
)

// SubmitReview godoc
// @Summary Review a book
// @Description This endpoint stores a review and updates the book's rating. Each reader may review a book once.
// @Description A challenge must first be requested from POST /v1/challenges and answered in the body.
// @Tags reviews
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param bookId path int true "ID of book to review"
// @Param body body dto.CreateReviewRequestBody true "JSON payload required to review a book"
// @Success 201 {object} data.Review
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/books/{bookId}/reviews [post]
func (h *Handler) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.CreateReviewRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	v := validator.New()
	if v.Struct(requestBody); !v.Valid() {
		h.validationErrorsResponse(w, r, v.Errors)
		return
	}
	err = h.service.VerifyChallenge(requestBody.ChallengeToken, requestBody.ChallengeAnswer)
	if err != nil {
		h.failedChallengeResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	review, book, err := h.service.SubmitReview(r.Context(), bookID, requestBody.Title, requestBody.Content, requestBody.Rating, user.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrDuplicateReview):
			h.duplicateReviewResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/books/%d/reviews", bookID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"review": review, "book": book}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListReviews godoc
// @Summary List reviews of a book
// @Description This endpoint lists the reviews of a book with each reviewer's profile picture
// @Tags reviews
// @Produce json
// @Param bookId path int true "ID of book"
// @Success 200 {array} data.Review
// @Failure 404
// @Failure 500
// @Router /v1/books/{bookId}/reviews [get]
func (h *Handler) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	reviews, err := h.service.ListReviews(r.Context(), bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"reviews": reviews}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// LikeReview godoc
// @Summary Like a review
// @Description This endpoint adds one like to a review and returns the new total
// @Tags reviews
// @Produce json
// @Param token header string true "Bearer token"
// @Param reviewId path int true "ID of review to like"
// @Success 200 {object} dto.LikeReviewResponse
// @Failure 401
// @Failure 404
// @Failure 500
// @Router /v1/reviews/{reviewId}/likes [post]
func (h *Handler) likeReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	likes, err := h.service.IncrementLikes(r.Context(), reviewID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"review": dto.LikeReviewResponse{ReviewID: reviewID, Likes: likes}}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
