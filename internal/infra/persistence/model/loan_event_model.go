package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LoanEventModel is the GORM-specific struct for the 'loan_events' audit table.
// MessageID is unique so redelivered bus messages are stored once.
type LoanEventModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MessageID  string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Type       string         `gorm:"type:varchar(50);not null"`
	LoanID     int64          `gorm:"not null;index"`
	GameID     int64          `gorm:"not null"`
	ClientID   int64          `gorm:"not null"`
	StartDate  datatypes.Date `gorm:"not null"`
	EndDate    datatypes.Date `gorm:"not null"`
	RequestID  string         `gorm:"type:varchar(255)"`
	Payload    datatypes.JSON `gorm:"type:jsonb"`
	OccurredAt time.Time      `gorm:"not null"`
	ReceivedAt time.Time      `gorm:"not null;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (LoanEventModel) TableName() string {
	return "loan_events"
}
