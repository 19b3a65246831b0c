package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/delivery/cli"
	"pathlab-client/internal/app/drivers/logger"
	"pathlab-client/internal/pkg/exceptions"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	app := cli.NewApp(&config.Bootstrap{
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	})

	rootCmd := cli.NewRootCommand(app)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			fmt.Fprintln(os.Stderr, customErr.ClientMessage)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
