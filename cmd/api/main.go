package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"

	inventoryDelivery "github.com/ofarias/inventario-api/internal/inventory/delivery"
	inventoryRepository "github.com/ofarias/inventario-api/internal/inventory/repository"
	inventoryUsecase "github.com/ofarias/inventario-api/internal/inventory/usecase"
	"github.com/ofarias/inventario-api/internal/pkg/app"
	userDelivery "github.com/ofarias/inventario-api/internal/user/delivery"
	userRepository "github.com/ofarias/inventario-api/internal/user/repository"
	userUsecase "github.com/ofarias/inventario-api/internal/user/usecase"
	"github.com/ofarias/inventario-api/pkg/statistics"
)

type WebApp interface {
	Start() error
	Shutdown(ctx context.Context) error
}

func startApp(webApp WebApp, config app.Config, logger *slog.Logger) {
	logger.Debug(fmt.Sprintf("web app starts at %s with configuration: %+v", config.Web.Host+":"+config.Web.Port, config))

	go func() {
		err := webApp.Start()
		if err != nil {
			panic(err)
		}
	}()
}

func shutdownApp(webApp WebApp, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("shutdown web app ...")

	const shutdownTimeout = time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)

	err := webApp.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	cancel()
	logger.Debug("web app exited")
}

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/api.yaml", "Config file path")
	pflag.Parse()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.Level(config.Logging.Level)}))

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	defer rdb.Close()

	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(config.Kafka.Addresses...),
		Topic:                  config.Kafka.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	defer kafkaWriter.Close()

	stat := statistics.NewKafkaStatistics(nil, kafkaWriter, logger, nil)

	statisticsMW, err := app.NewStatisticsMW(stat, logger)
	if err != nil {
		panic(err)
	}

	users := userDelivery.New(
		userUsecase.New(userRepository.NewRedisRepository(rdb, logger), logger),
		logger,
	)
	inventory := inventoryDelivery.New(
		inventoryUsecase.New(inventoryRepository.NewRedisRepository(rdb, logger), logger),
		logger,
	)

	webApp := app.NewFiberApp(config.Web, statisticsMW, logger, users, inventory)

	startApp(webApp, config, logger)
	shutdownApp(webApp, logger)
}
