package dto

// CreateReviewRequestBody defines a request body for SubmitReview service. The
// challenge fields carry the answer to a challenge issued by POST /v1/challenges.
type CreateReviewRequestBody struct {
	Title           string `json:"title" validate:"required,max=255"`
	Content         string `json:"content" validate:"required,max=10000"`
	Rating          int    `json:"rating" validate:"required,min=1,max=5"`
	ChallengeToken  string `json:"challenge_token" validate:"required"`
	ChallengeAnswer string `json:"challenge_answer" validate:"required"`
}

// LikeReviewResponse defines the response body for IncrementLikes service.
type LikeReviewResponse struct {
	ReviewID int64 `json:"review_id"`
	Likes    int64 `json:"likes"`
}
