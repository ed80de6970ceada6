package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"github.com/ofarias/inventario-api/internal/display"
	"github.com/ofarias/inventario-api/internal/pkg/app"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/display.yaml", "Config file path")
	pflag.Parse()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.Level(config.Logging.Level)}))

	webApp := app.NewFiberApp(config.Web, nil, logger, display.New(logger))

	go func() {
		if err = webApp.Start(); err != nil {
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("shutdown web app ...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err = webApp.Shutdown(ctx); err != nil {
		panic(err)
	}
}
