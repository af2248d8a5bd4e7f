package ports

import (
	"context"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
)

// OutcomePublisher — необязательный канал уведомлений:
// каждая запись журнала публикуется как событие (например, в Kafka).
type OutcomePublisher interface {
	Publish(ctx context.Context, entry *domain.SyncLog) error
	Close() error
}
