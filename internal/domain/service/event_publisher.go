package service

import (
	"context"
)

// LoanEvent is published after a loan change commits and consumed by the audit worker.
type LoanEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	LoanID     int64  `json:"loan_id"`
	GameID     int64  `json:"game_id"`
	ClientID   int64  `json:"client_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLoanEvent publishes a committed loan change for async processing
	PublishLoanEvent(ctx context.Context, event *LoanEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
