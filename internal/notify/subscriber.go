package notify

import (
	"context"
	"encoding/json"
	"time"
)

// Done returns a channel that is closed when Run() exits.
func (d *Dispatcher) Done() <-chan struct{} { return d.doneCh }

// Run subscribes to the fan-out channel and delivers events published by
// other instances to local connections until ctx is done. It reconnects on
// receive errors.
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.doneCh)

	for {
		err := d.runSubscription(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			d.log.Warn("notification subscription error, reconnecting in 2s", "err", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

func (d *Dispatcher) runSubscription(ctx context.Context) error {
	pubsub := d.rdb.Subscribe(ctx, d.channel)
	defer pubsub.Close()

	// Wait for subscription to be active
	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			d.handleMessage(msg.Payload)
		}
	}
}

func (d *Dispatcher) handleMessage(raw string) {
	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		d.log.Warn("invalid notification payload", "err", err)
		return
	}
	if env.Origin == d.instanceID || env.Notification.UserID == "" {
		return
	}
	d.deliver(env.Notification)
}
