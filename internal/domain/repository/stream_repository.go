package repository

import (
	"context"

	"github.com/shuttle-hr/internal/domain"
)

// StreamRepository определяет методы для работы с Redis Streams
type StreamRepository interface {
	// CreateConsumerGroup создает consumer group (idempotent)
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count new messages for the consumer
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error)

	// AckMessages подтверждает обработку сообщений
	AckMessages(ctx context.Context, stream, group string, ids ...string) error

	// PublishToStream публикует сообщение в stream
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
