package entity

import (
	"time"
)

// Subject is the kind of entity an overlap query is scoped to.
type Subject string

const (
	SubjectGame   Subject = "game"
	SubjectClient Subject = "client"
)

// Loan is a game lent to a client for a closed range of calendar dates.
type Loan struct {
	ID        int64
	GameID    int64
	ClientID  int64
	Game      *Game
	Client    *Client
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Period returns the loan's date range.
func (l *Loan) Period() DateRange {
	return NewDateRange(l.StartDate, l.EndDate)
}

// SubjectRef returns the identifier the loan holds for the given subject kind.
func (l *Loan) SubjectRef(kind Subject) (int64, bool) {
	switch kind {
	case SubjectGame:
		return l.GameID, true
	case SubjectClient:
		return l.ClientID, true
	default:
		return 0, false
	}
}

// Field resolves a dotted attribute path against the loan.
// Paths follow the JSON names exposed by the API (startDate, game.id, client.name...).
func (l *Loan) Field(path string) (any, bool) {
	switch path {
	case "id":
		return l.ID, true
	case "startDate":
		return l.StartDate, true
	case "endDate":
		return l.EndDate, true
	case "createdAt":
		return l.CreatedAt, true
	case "updatedAt":
		return l.UpdatedAt, true
	case "game.id":
		return l.GameID, true
	case "client.id":
		return l.ClientID, true
	}

	if l.Game != nil {
		if value, ok := l.Game.field(path); ok {
			return value, true
		}
	}
	if l.Client != nil {
		if value, ok := l.Client.field(path); ok {
			return value, true
		}
	}

	return nil, false
}

// Clone returns a copy that shares no pointers with l.
func (l *Loan) Clone() *Loan {
	if l == nil {
		return nil
	}

	cloned := *l
	if l.Game != nil {
		game := *l.Game
		cloned.Game = &game
	}
	if l.Client != nil {
		client := *l.Client
		cloned.Client = &client
	}

	return &cloned
}
