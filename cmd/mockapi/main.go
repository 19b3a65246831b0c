package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/delivery/http/routers"
	"pathlab-client/internal/app/drivers/logger"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	router, _ := routers.NewRouter(internalConfig, zapLogger)

	server := &http.Server{
		Addr:    internalConfig.Mock.Port,
		Handler: router,
	}

	go func() {
		bootstrapLog.Printf("Mock PathLab API listening on %s", internalConfig.Mock.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.Mock.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}
