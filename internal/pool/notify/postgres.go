package notify

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	channelPrefix        = "tokenpool_"
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Postgres is a Notifier backed by PostgreSQL LISTEN/NOTIFY. Messages published by any
// process sharing the database reach subscribers of every process, including the publisher.
type Postgres struct {
	logger   *zap.Logger
	db       *sql.DB
	listener *pq.Listener
	bus      *Bus

	mu        sync.Mutex
	listening map[string]bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewPostgres connects a publisher and a listener to dsn.
func NewPostgres(dsn string, logger *zap.Logger) (*Postgres, error) {
	if dsn == "" {
		return nil, errors.New("notify dsn is required")
	}
	logger = logger.Named("notify_postgres")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open notify connection: %w", err)
	}
	db.SetMaxOpenConns(2)

	listener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("listener event", zap.Int("event", int(ev)), zap.Error(err))
		}
	})

	p := &Postgres{
		logger:    logger,
		db:        db,
		listener:  listener,
		bus:       NewBus(logger, defaultBuffer),
		listening: make(map[string]bool),
		done:      make(chan struct{}),
	}
	p.wg.Add(1)
	go p.loop()
	return p, nil
}

// Publish sends payload through pg_notify.
func (p *Postgres) Publish(ctx context.Context, topic string, payload []byte) error {
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channelName(topic), string(payload)); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Subscribe starts listening on topic and registers a local subscriber.
func (p *Postgres) Subscribe(topic string) (<-chan Message, func()) {
	p.mu.Lock()
	if !p.listening[topic] {
		if err := p.listener.Listen(channelName(topic)); err != nil && !errors.Is(err, pq.ErrChannelAlreadyOpen) {
			p.logger.Error("listen failed", zap.String("topic", topic), zap.Error(err))
		} else {
			p.listening[topic] = true
		}
	}
	p.mu.Unlock()
	return p.bus.Subscribe(topic)
}

// Close stops the listener and closes every subscriber.
func (p *Postgres) Close() error {
	close(p.done)
	p.wg.Wait()

	return errors.Join(p.listener.Close(), p.db.Close(), p.bus.Close())
}

func (p *Postgres) loop() {
	defer p.wg.Done()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case n := <-p.listener.Notify:
			if n == nil {
				// reconnected; notifications sent while disconnected are lost
				p.logger.Info("listener reconnected")
				continue
			}
			topic, ok := topicName(n.Channel)
			if !ok {
				continue
			}
			if err := p.bus.Publish(context.Background(), topic, []byte(n.Extra)); err != nil {
				p.logger.Warn("dispatch notification", zap.String("topic", topic), zap.Error(err))
			}
		case <-ticker.C:
			if err := p.listener.Ping(); err != nil {
				p.logger.Warn("listener ping failed", zap.Error(err))
			}
		}
	}
}

func channelName(topic string) string {
	return channelPrefix + topic
}

func topicName(channel string) (string, bool) {
	if !strings.HasPrefix(channel, channelPrefix) {
		return "", false
	}
	return strings.TrimPrefix(channel, channelPrefix), true
}
