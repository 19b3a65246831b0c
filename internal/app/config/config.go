package config

import (
	"pathlab-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "pathlab.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "pathlab_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:        utils.GetEnvString("APP_ENV", "development"),
			SessionDir: utils.GetEnvString("APP_SESSION_DIR", ""),
		},
		Backend: Backend{
			BaseUrl:         utils.GetEnvString("PATHLAB_BASE_URL", "https://pathology-lab-backend-new.onrender.com/api"),
			TimeoutInSecond: utils.GetEnvInt("PATHLAB_REQUEST_TIMEOUT_IN_SECOND", 0),
		},
		Mock: Mock{
			Port:                utils.GetEnvString("MOCKAPI_PORT", ":8080"),
			EndpointPrefix:      utils.GetEnvString("MOCKAPI_ENDPOINT_PREFIX", "/api"),
			JWTSecret:           utils.GetEnvString("MOCKAPI_JWT_SECRET", "pathlab-mock-secret"),
			MaxRequests:         utils.GetEnvInt("MOCKAPI_MAX_REQUEST", 100),
			LoginBurst:          utils.GetEnvInt("MOCKAPI_LOGIN_BURST", 5),
			ShutdownTimeout:     utils.GetEnvInt("MOCKAPI_SHUTDOWN_TIMEOUT", 10),
			AccessTokenTTLInSec: utils.GetEnvInt("MOCKAPI_ACCESS_TOKEN_TTL_IN_SECOND", 900),
		},
	}
}
