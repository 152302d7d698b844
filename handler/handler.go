package handler

import (
	"github.com/emzola/bookcritic/config"
	"github.com/emzola/bookcritic/internal/jsonlog"
	"github.com/emzola/bookcritic/service"
)

// Handler defines the HTTP layer.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	service service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		service: service,
	}
}
