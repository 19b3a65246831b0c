package config

import (
	"go.uber.org/zap"
)

type (
	// Bootstrap bundles everything a command or server needs wired in.
	Bootstrap struct {
		Logger         *zap.Logger
		InternalConfig *InternalConfig
		DriverConfig   *DriverConfig
	}

	InternalConfig struct {
		App     App
		Backend Backend
		Mock    Mock
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env string
		// SessionDir overrides where the session file lives; empty means
		// the user config directory.
		SessionDir string
	}

	Backend struct {
		BaseUrl string
		// TimeoutInSecond of 0 keeps the transport's own default, matching
		// the browser client this replaces.
		TimeoutInSecond int
	}

	Mock struct {
		Port                string
		EndpointPrefix      string
		JWTSecret           string
		MaxRequests         int
		LoginBurst          int
		ShutdownTimeout     int
		AccessTokenTTLInSec int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
