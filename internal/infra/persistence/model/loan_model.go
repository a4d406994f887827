package model

import (
	"time"

	"gorm.io/datatypes"
)

// LoanModel is the GORM-specific struct for the 'loans' table.
type LoanModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	GameID    int64          `gorm:"not null;index:idx_loans_game_period,priority:1"`
	ClientID  int64          `gorm:"not null;index:idx_loans_client_period,priority:1"`
	StartDate datatypes.Date `gorm:"not null;index:idx_loans_game_period,priority:2;index:idx_loans_client_period,priority:2"`
	EndDate   datatypes.Date `gorm:"not null;check:chk_loans_period,end_date >= start_date"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Game   *GameModel   `gorm:"foreignKey:GameID;references:ID;constraint:OnDelete:RESTRICT"`
	Client *ClientModel `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (LoanModel) TableName() string {
	return "loans"
}
