package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/marvik-ai/success-orchestry-api/internal/config"
	"github.com/marvik-ai/success-orchestry-api/internal/messaging/kafka"
	"github.com/marvik-ai/success-orchestry-api/internal/messaging/kafka/producer"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox events to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeDB(gormDB, logger)

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.Database.MaxRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.OutboxPoll)

	log.Info("worker shut down")
	return nil
}
