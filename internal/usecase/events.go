package usecase

import (
	"context"

	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository"
	"go.uber.org/zap"
)

// RecomputeNotifier publishes assignment recompute requests after data changes.
// Publishing is best effort: the write that triggered it has already succeeded.
type RecomputeNotifier struct {
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewRecomputeNotifier(streamRepo repository.StreamRepository, logger *zap.Logger) *RecomputeNotifier {
	return &RecomputeNotifier{
		streamRepo: streamRepo,
		logger:     logger,
	}
}

func (n *RecomputeNotifier) Notify(ctx context.Context, reason string) {
	if n == nil || n.streamRepo == nil {
		return
	}

	event := domain.NewAssignmentRecomputeEvent(reason)
	if err := n.streamRepo.PublishToStream(ctx, domain.StreamAssignmentsRecompute, event); err != nil {
		n.logger.Warn("Failed to publish assignment recompute event",
			zap.String("reason", reason),
			zap.Error(err),
		)
		return
	}

	n.logger.Debug("Assignment recompute requested",
		zap.String("reason", reason),
		zap.String("event_id", event.ID.String()),
	)
}
