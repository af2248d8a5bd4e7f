package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
	"github.com/Gunvolt24/wb_tariffs/internal/ports"
	"github.com/Gunvolt24/wb_tariffs/pkg/metrics"
)

// Проверка, что Publisher удовлетворяет порту публикации исходов.
var _ ports.OutcomePublisher = (*Publisher)(nil)

// writer — минимальный контракт над kafka.Writer для подмены в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PublisherConfig — настройки продьюсера событий.
type PublisherConfig struct {
	Brokers []string
	Topic   string
}

// outcomeEvent — тело события: плоская проекция записи журнала.
type outcomeEvent struct {
	SyncType         string         `json:"sync_type"`
	Status           string         `json:"status"`
	RecordsProcessed int            `json:"records_processed"`
	ErrorMessage     string         `json:"error_message,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	OccurredAt       time.Time      `json:"occurred_at"`
}

// Publisher — публикует каждый исход синхронизации/выгрузки как JSON-событие.
// Канал необязательный: ошибки публикации не влияют на сам прогон.
type Publisher struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewPublisher — конструктор поверх kafka.Writer.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w, topic: cfg.Topic, log: log}
}

// Publish — сериализует запись журнала и отправляет одно сообщение.
// Ключ — вид синхронизации: события одного вида попадают в одну партицию.
func (p *Publisher) Publish(ctx context.Context, entry *domain.SyncLog) error {
	event := outcomeEvent{
		SyncType:         entry.SyncType,
		Status:           entry.Status,
		RecordsProcessed: entry.RecordsProcessed,
		ErrorMessage:     entry.ErrorMessage,
		Metadata:         entry.Metadata,
		OccurredAt:       time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal outcome event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(entry.SyncType),
		Value: payload,
	}); err != nil {
		metrics.OutcomeEvents.WithLabelValues("failed").Inc()
		return fmt.Errorf("write outcome event: %w", err)
	}

	metrics.OutcomeEvents.WithLabelValues("ok").Inc()
	p.log.Infof(ctx, "kafka: outcome published topic=%s type=%s status=%s", p.topic, entry.SyncType, entry.Status)
	return nil
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
