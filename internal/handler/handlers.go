package handler

import (
	"github.com/hraghav/tally-mirror/internal/config"
	"github.com/hraghav/tally-mirror/internal/handler/http"
	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
