package notify

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("notifier closed")

const defaultBuffer = 16

// Bus is an in-process Notifier.
type Bus struct {
	logger *zap.Logger
	buffer int

	mu     sync.RWMutex
	subs   map[string]map[uint64]chan Message
	nextID uint64
	closed bool
}

// NewBus returns a Bus whose subscriber channels hold buffer messages.
func NewBus(logger *zap.Logger, buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Bus{
		logger: logger.Named("notify_bus"),
		buffer: buffer,
		subs:   make(map[string]map[uint64]chan Message),
	}
}

// Publish delivers payload to every current subscriber of topic without blocking.
func (b *Bus) Publish(_ context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}
	for id, ch := range b.subs[topic] {
		select {
		case ch <- Message{Topic: topic, Payload: payload}:
		default:
			b.logger.Warn("subscriber is full, dropping message",
				zap.String("topic", topic),
				zap.Uint64("subscriber", id),
			)
		}
	}
	return nil
}

// Subscribe registers a subscriber. The returned function unsubscribes and closes the channel.
func (b *Bus) Subscribe(topic string) (<-chan Message, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	b.nextID++
	id := b.nextID
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uint64]chan Message)
	}
	b.subs[topic][id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[topic][id]; ok {
				delete(b.subs[topic], id)
				close(sub)
			}
		})
	}
}

// Close closes every subscriber channel.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for topic, subs := range b.subs {
		for id, ch := range subs {
			close(ch)
			delete(subs, id)
		}
		delete(b.subs, topic)
	}
	return nil
}

func (b *Bus) subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
