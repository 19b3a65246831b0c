package middlewares

import (
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/services/mockstore"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	Store          *mockstore.Store
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, store *mockstore.Store, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		Store:          store,
		InternalConfig: internalConfig,
	}
}
