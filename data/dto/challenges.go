package dto

// ChallengeResponse defines the response body for CreateChallenge service.
type ChallengeResponse struct {
	Token  string `json:"token"`
	Prompt string `json:"prompt"`
}
