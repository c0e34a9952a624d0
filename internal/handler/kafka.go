package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ghbundles/fulfillment-service/internal/config"
	"github.com/ghbundles/fulfillment-service/internal/entities"
	"github.com/ghbundles/fulfillment-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderQueuer interface {
	QueueOrder(ctx context.Context, orderID string) (bool, error)
}

// kafkaHandler consumes payment confirmations and queues the confirmed
// orders for fulfillment. Queueing is idempotent, so a redelivered
// confirmation is harmless.
type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	queuer   OrderQueuer
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, queuer OrderQueuer) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		queuer:   queuer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		start := time.Now()
		if err := h.handleConfirmation(ctx, m); err != nil {
			confirmationsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			confirmationsDLQ.Inc()
		} else {
			confirmationsProcessed.Inc()
		}
		confirmationDuration.Observe(time.Since(start).Seconds())

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleConfirmation(ctx context.Context, m kafka.Message) error {
	var confirmation PaymentConfirmation
	if err := json.Unmarshal(m.Value, &confirmation); err != nil {
		return fmt.Errorf("failed to unmarshal payment confirmation: %w", err)
	}

	if err := h.validate.Struct(confirmation); err != nil {
		return fmt.Errorf("invalid payment confirmation: %w", err)
	}

	if confirmation.PaymentStatus != "PAID" {
		return nil
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}

	// An unknown order will not appear on retry; send it straight to the DLQ.
	return utils.Retry(cfg, func() error {
		_, err := h.queuer.QueueOrder(ctx, confirmation.OrderID)
		return err
	}, entities.ErrOrderNotFound)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
