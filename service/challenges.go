package service

import "github.com/emzola/bookcritic/internal/metrics"

type challenges interface {
	CreateChallenge() (token string, prompt string)
	VerifyChallenge(token string, answer string) error
}

// CreateChallenge service issues a new human-verification challenge.
func (s *service) CreateChallenge() (string, string) {
	return s.challenges.Create()
}

// VerifyChallenge service consumes a challenge and returns ErrFailedChallenge
// unless answer solves it.
func (s *service) VerifyChallenge(token string, answer string) error {
	passed := s.challenges.Verify(token, answer)
	metrics.RecordChallenge(passed)
	if !passed {
		return ErrFailedChallenge
	}
	return nil
}
