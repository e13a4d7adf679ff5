package assignment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"github.com/shuttle-hr/internal/worker"
	"go.uber.org/zap"
)

const (
	defaultBatchSize = 20
	errorBackoff     = time.Second
)

// Recomputer rebuilds the stored employee assignments.
type Recomputer interface {
	Recompute(ctx context.Context) (int, error)
}

// Worker слушает stream:assignments:recompute. Все события одной пачки
// схлопываются в один пересчёт.
type Worker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	recomputer Recomputer
	batchSize  int64

	// сообщения, которые ждут успешного пересчёта
	pending []string
}

func NewWorker(
	streamRepo repository.StreamRepository,
	recomputer Recomputer,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *Worker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Worker{
		BaseWorker: worker.NewBaseWorker("assignment-recompute", consumerGroup, logger),
		streamRepo: streamRepo,
		recomputer: recomputer,
		batchSize:  int64(batchSize),
	}
}

// Start создаёт consumer group, делает начальный пересчёт и обрабатывает
// события до Stop или отмены ctx.
func (w *Worker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting assignment worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int64("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAssignmentsRecompute, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	if _, err := w.recomputer.Recompute(ctx); err != nil {
		logger.Error("Initial recompute failed", zap.Error(err))
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		if _, err := w.processBatch(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error("Failed to process batch", zap.Error(err))
			if !w.Pause(errorBackoff) {
				return nil
			}
		}
	}
}

// processBatch читает пачку событий и выполняет не больше одного пересчёта.
// Возвращает количество подтверждённых сообщений.
func (w *Worker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamAssignmentsRecompute,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	var reasons []string
	for _, msg := range messages {
		var event domain.AssignmentRecomputeEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Malformed recompute event, acking",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			_ = w.streamRepo.AckMessages(ctx, domain.StreamAssignmentsRecompute, w.ConsumerGroup(), msg.ID)
			continue
		}
		reasons = append(reasons, event.Reason)
		w.pending = append(w.pending, msg.ID)
	}

	if len(w.pending) == 0 {
		return 0, nil
	}

	count, err := w.recomputer.Recompute(ctx)
	if err != nil {
		// pending остаются и будут подтверждены после следующего успешного пересчёта
		return 0, fmt.Errorf("recompute failed: %w", err)
	}

	acked := len(w.pending)
	if err := w.streamRepo.AckMessages(ctx, domain.StreamAssignmentsRecompute, w.ConsumerGroup(), w.pending...); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}
	w.pending = nil

	logger.Info("Assignments recomputed",
		zap.Int("events", acked),
		zap.Strings("reasons", reasons),
		zap.Int("assignments", count))
	return acked, nil
}
