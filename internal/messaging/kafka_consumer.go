package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/parlay-recommender-service/internal/metrics"
	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
	"github.com/cypherlabdev/parlay-recommender-service/internal/service"
)

// errMissingSport rejects snapshots that cannot be keyed in the cache
var errMissingSport = errors.New("snapshot has no sport key")

// KafkaConsumer ingests odds snapshots published by upstream ingestion into
// the snapshot cache, so catalog requests rarely reach the odds API
type KafkaConsumer struct {
	reader  *kafka.Reader
	cache   service.SnapshotCache
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "odds_snapshots"
	GroupID string   // e.g., "parlay-recommender"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	cache service.SnapshotCache,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: 1000, // Commit every 1 second
	})

	return &KafkaConsumer{
		reader:  reader,
		cache:   cache,
		metrics: m,
		logger:  logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage stores one snapshot unless the cache already holds a newer one
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var kafkaMsg models.KafkaOddsSnapshotMessage
	if err := json.Unmarshal(msg.Value, &kafkaMsg); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	if kafkaMsg.SportKey == "" {
		return fmt.Errorf("batch %s: %w", kafkaMsg.BatchID, errMissingSport)
	}

	snapshot := kafkaMsg.Snapshot()

	if cached, err := c.cache.Get(ctx, snapshot.SportKey); err == nil && cached != nil && cached.FetchedAt.After(snapshot.FetchedAt) {
		c.logger.Debug().
			Str("sport", snapshot.SportKey).
			Str("batch_id", kafkaMsg.BatchID).
			Time("cached_at", cached.FetchedAt).
			Time("fetched_at", snapshot.FetchedAt).
			Msg("skipping snapshot older than cached copy")
		return nil
	}

	if err := c.cache.Set(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to cache snapshot: %w", err)
	}
	c.metrics.SnapshotsConsumed.Inc()

	c.logger.Info().
		Str("sport", snapshot.SportKey).
		Int("games", len(snapshot.Games)).
		Str("batch_id", kafkaMsg.BatchID).
		Msg("cached odds snapshot")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
