//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
	ikafka "github.com/Gunvolt24/wb_tariffs/internal/kafka"
	"github.com/Gunvolt24/wb_tariffs/internal/testutil"
	"github.com/Gunvolt24/wb_tariffs/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// Публикация исхода: событие доезжает до брокера и читается обратно.
func TestPublisher_PublishOutcome_TC(t *testing.T) {
	// длинный контекст только на старт контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "tariff-events-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	// короткий контекст на сам тест
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	pub := ikafka.NewPublisher(&ikafka.PublisherConfig{
		Brokers: kf.Brokers,
		Topic:   topic,
	}, logg)
	t.Cleanup(func() { _ = pub.Close() })

	entry := &domain.SyncLog{
		SyncType:         domain.SyncTypeAPISync,
		Status:           domain.StatusSuccess,
		RecordsProcessed: 37,
		Metadata:         map[string]any{"effective_date": "2025-08-18"},
	}
	require.NoError(t, pub.Publish(ctx, entry))

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  kf.Brokers,
		GroupID:  group,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	t.Cleanup(func() { _ = r.Close() })

	msg, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.SyncTypeAPISync, string(msg.Key))

	var event struct {
		SyncType         string         `json:"sync_type"`
		Status           string         `json:"status"`
		RecordsProcessed int            `json:"records_processed"`
		Metadata         map[string]any `json:"metadata"`
		OccurredAt       time.Time      `json:"occurred_at"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	require.Equal(t, domain.SyncTypeAPISync, event.SyncType)
	require.Equal(t, domain.StatusSuccess, event.Status)
	require.Equal(t, 37, event.RecordsProcessed)
	require.Equal(t, "2025-08-18", event.Metadata["effective_date"])
	require.False(t, event.OccurredAt.IsZero())
}
