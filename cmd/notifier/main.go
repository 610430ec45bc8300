package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cafelumiere/cafe-api/cmd/config"
	"github.com/cafelumiere/cafe-api/thirdparty/rabbitmq"
	"github.com/cafelumiere/cafe-api/utils/logger"
	"go.uber.org/zap"
)

// Notification worker: consumes order and password-reset events published
// by the API and hands them to a Notifier.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting notifier worker", zap.String("env", cfg.Environment))

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, rabbitmq.LogNotifier{})
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Notifier worker running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Notifier worker shutting down")
}
