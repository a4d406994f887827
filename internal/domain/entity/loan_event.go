package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoanEventType names a committed change to a loan.
type LoanEventType string

const (
	LoanCreated LoanEventType = "loan.created"
	LoanUpdated LoanEventType = "loan.updated"
	LoanDeleted LoanEventType = "loan.deleted"
)

// Valid reports whether t is one of the known event types.
func (t LoanEventType) Valid() bool {
	switch t {
	case LoanCreated, LoanUpdated, LoanDeleted:
		return true
	default:
		return false
	}
}

// LoanAuditEntry is a loan event as recorded by the audit worker.
type LoanAuditEntry struct {
	ID         uuid.UUID
	MessageID  string
	Type       LoanEventType
	LoanID     int64
	GameID     int64
	ClientID   int64
	StartDate  time.Time
	EndDate    time.Time
	RequestID  string
	Payload    []byte
	OccurredAt time.Time
	ReceivedAt time.Time
}
