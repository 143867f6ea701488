package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dperaltab/tienda-admin/internal/clients/storeapi"
	"github.com/dperaltab/tienda-admin/internal/config"
	"github.com/dperaltab/tienda-admin/internal/handlers"
	"github.com/dperaltab/tienda-admin/internal/middlewares/logger"
	"github.com/dperaltab/tienda-admin/internal/service"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conf := config.InitConfig()

	if err := logger.Initialize(conf.LogLevel); err != nil {
		return err
	}

	tokens := storeapi.NewStaticTokenProvider(conf.StoreAPIToken)
	client := storeapi.NewClient(conf.StoreAPIURL, tokens)

	serverService := service.NewServerService(rootCtx, conf.Address)
	serverService.SetRouter(handlers.NewRouter(handlers.RouterDeps{
		Client:          client,
		JWTSecret:       conf.JWTSecret,
		ReceiptPageSize: conf.ReceiptPageSize,
	}))

	serverErr := make(chan error, 1)
	logger.Log.Info("Running Server on", zap.String("address", conf.Address))
	go serverService.RunServer(&serverErr)

	var err error
	select {
	case <-rootCtx.Done():
		logger.Log.Info("Received shutdown signal, shutting down.")
	case err = <-serverErr:
		logger.Log.Error("Server error", zap.Error(err))
	}

	if shutdownErr := serverService.Shutdown(); shutdownErr != nil {
		logger.Log.Error("Server shutdown error", zap.Error(shutdownErr))
	}

	return err
}
