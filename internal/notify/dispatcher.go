// Package notify persists user notifications and pushes them to live
// connections on every instance.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/cache"
	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/internal/repository"
)

const processTimeout = 5 * time.Second

// Deliverer pushes a payload to the live connections of a user held by this
// instance. *realtime.Registry satisfies it.
type Deliverer interface {
	SendToUser(userID string, payload any) (int, error)
}

// Payload is the client-facing form of a notification.
type Payload struct {
	ID        string              `json:"id"`
	UserID    string              `json:"userId"`
	Type      db.NotificationType `json:"type"`
	Title     string              `json:"title"`
	Body      string              `json:"body,omitempty"`
	Data      map[string]any      `json:"data,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Message is what a websocket client receives.
type Message struct {
	Type         string  `json:"type"`
	Notification Payload `json:"notification"`
}

// Envelope is published on the fan-out channel. Origin lets the publishing
// instance skip its own events.
type Envelope struct {
	Origin       string  `json:"origin"`
	Notification Payload `json:"notification"`
}

func newPayload(n *db.Notification) Payload {
	return Payload{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		Data:      n.Data,
		CreatedAt: n.CreatedAt,
	}
}

// Dispatcher accepts notifications without blocking, then stores, delivers
// and fans them out from a small worker pool.
type Dispatcher struct {
	repo       *repository.NotificationRepository
	rdb        *cache.RedisCache
	local      Deliverer
	log        *slog.Logger
	channel    string
	instanceID string
	workers    int

	queue    chan *db.Notification
	wg       sync.WaitGroup
	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
	doneCh   chan struct{}
	dropped  atomic.Int64
}

// NewDispatcher builds a dispatcher from the notify and app sections of cfg.
func NewDispatcher(gdb *gorm.DB, rdb *cache.RedisCache, local Deliverer, cfg *config.Config, log *slog.Logger) *Dispatcher {
	workers := cfg.Notify.Workers
	if workers <= 0 {
		workers = 4
	}
	size := cfg.Notify.QueueSize
	if size <= 0 {
		size = 1024
	}
	channel := cfg.Notify.Channel
	if channel == "" {
		channel = "notifications"
	}
	return &Dispatcher{
		repo:       repository.NewNotificationRepository(gdb),
		rdb:        rdb,
		local:      local,
		log:        log.With("component", "notify"),
		channel:    channel,
		instanceID: cfg.App.InstanceID,
		workers:    workers,
		queue:      make(chan *db.Notification, size),
		doneCh:     make(chan struct{}),
	}
}

// Notify queues n. When the queue is full the notification is dropped and
// logged; callers are never blocked.
func (d *Dispatcher) Notify(n *db.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.dropped.Add(1)
		d.log.Warn("dispatcher stopped, dropping notification", "user_id", n.UserID, "type", n.Type)
		return
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
	select {
	case d.queue <- n:
	default:
		d.dropped.Add(1)
		d.log.Warn("notification queue full, dropping", "user_id", n.UserID, "type", n.Type)
	}
}

// Dropped returns how many notifications were discarded so far.
func (d *Dispatcher) Dropped() int64 { return d.dropped.Load() }

// Start launches the workers.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	d.log.Info("notification dispatcher started", "workers", d.workers, "instance_id", d.instanceID)
}

// Stop refuses new notifications, lets the workers drain what is queued and
// waits for them.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()

		d.wg.Wait()
		d.log.Info("notification dispatcher stopped")
	})
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for n := range d.queue {
		d.process(n)
	}
}

func (d *Dispatcher) process(n *db.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	log := d.log.With("user_id", n.UserID, "type", n.Type)

	if err := d.repo.Create(ctx, n); err != nil {
		log.Error("failed to store notification", "err", err)
	}

	payload := newPayload(n)
	d.deliver(payload)

	data, err := json.Marshal(Envelope{Origin: d.instanceID, Notification: payload})
	if err != nil {
		log.Error("failed to encode notification", "err", err)
		return
	}
	if err := d.rdb.Publish(ctx, d.channel, data); err != nil {
		log.Warn("failed to publish notification", "err", err)
	}
}

func (d *Dispatcher) deliver(p Payload) {
	if d.local == nil {
		return
	}
	n, err := d.local.SendToUser(p.UserID, Message{Type: "notification", Notification: p})
	if err != nil {
		d.log.Error("failed to deliver notification", "user_id", p.UserID, "err", err)
		return
	}
	if n > 0 {
		d.log.Debug("notification delivered", "user_id", p.UserID, "connections", n)
	}
}
