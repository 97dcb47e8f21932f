// Package notify carries small cross-process events such as challenge changes.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// TopicNewChallenge is published whenever the current challenge changes.
const TopicNewChallenge = "new_challenge"

// Message is a delivered event.
type Message struct {
	Topic   string
	Payload []byte
}

// Notifier publishes events and fans them out to subscribers. Delivery is best effort:
// subscribers that fall behind lose messages.
type Notifier interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Subscribe(topic string) (<-chan Message, func())
	Close() error
}

// Publisher is the publishing half of a Notifier.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// ChallengeChanged is the payload of TopicNewChallenge.
type ChallengeChanged struct {
	EpochCount      uint64 `json:"epoch_count"`
	ChallengeNumber string `json:"challenge_number"`
}

// PublishChallengeChanged publishes a ChallengeChanged event.
func PublishChallengeChanged(ctx context.Context, p Publisher, event ChallengeChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal challenge changed: %w", err)
	}
	return p.Publish(ctx, TopicNewChallenge, payload)
}

// DecodeChallengeChanged parses a TopicNewChallenge payload.
func DecodeChallengeChanged(msg Message) (ChallengeChanged, error) {
	var event ChallengeChanged
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return event, fmt.Errorf("unmarshal challenge changed: %w", err)
	}
	return event, nil
}

// Open returns a PostgreSQL notifier for dsn, or an in-process Bus when dsn is empty.
func Open(dsn string, logger *zap.Logger) (Notifier, error) {
	if dsn == "" {
		logger.Warn("no notify dsn configured, challenge changes stay inside this process")
		return NewBus(logger, 0), nil
	}
	return NewPostgres(dsn, logger)
}
