package sui

import (
	"context"
	"time"
)

// EventFilter selects which chain events a subscription receives.
// Package alone matches every module in the package; Module narrows
// to one module's events.
type EventFilter struct {
	Package string
	Module  string
}

// EventNotification is one chain event delivered on a subscription.
type EventNotification struct {
	TxDigest string
	Type     string
	Sender   string
	Parsed   Fields
}

// EventClient defines the subscription side of a Sui fullnode.
type EventClient interface {
	// SubscribeEvents subscribes to events matching the filter.
	// The returned channel is closed when the client closes.
	SubscribeEvents(ctx context.Context, filter EventFilter) (<-chan EventNotification, error)

	// Close shuts the connection down and closes all subscription channels.
	Close() error
}

// WSConfig configures WebSocket client behavior.
type WSConfig struct {
	// ReconnectDelay is initial delay before reconnect attempt.
	ReconnectDelay time.Duration
	// MaxReconnectDelay is maximum delay between reconnect attempts.
	MaxReconnectDelay time.Duration
	// PingInterval is interval for sending ping frames.
	PingInterval time.Duration
	// ReadTimeout is timeout for reading messages.
	ReadTimeout time.Duration
	// WriteTimeout is timeout for writing messages.
	WriteTimeout time.Duration
}

// DefaultWSConfig returns default WebSocket configuration.
func DefaultWSConfig() WSConfig {
	return WSConfig{
		ReconnectDelay:    1 * time.Second,
		MaxReconnectDelay: 30 * time.Second,
		PingInterval:      30 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
}
