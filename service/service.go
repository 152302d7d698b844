package service

import (
	"github.com/emzola/bookcritic/config"
	"github.com/emzola/bookcritic/internal/challenge"
	"github.com/emzola/bookcritic/internal/jsonlog"
	"github.com/emzola/bookcritic/internal/moderation"
	"github.com/emzola/bookcritic/repository"
)

type Service interface {
	books
	reviews
	users
	tokens
	challenges
}

// service defines the service layer.
type service struct {
	config     config.Config
	logger     *jsonlog.Logger
	repo       repository.Repository
	filter     *moderation.Filter
	challenges *challenge.Verifier
}

// New creates a new instance of Service.
func New(cfg config.Config, logger *jsonlog.Logger, repo repository.Repository, filter *moderation.Filter, challenges *challenge.Verifier) *service {
	return &service{
		config:     cfg,
		logger:     logger,
		repo:       repo,
		filter:     filter,
		challenges: challenges,
	}
}
