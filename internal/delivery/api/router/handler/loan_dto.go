package handler

import (
	"time"

	"ludoteca/internal/domain/entity"
	"ludoteca/internal/usecase"
)

// ReferenceRequest points at a catalog entry by id.
type ReferenceRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// SaveLoanRequest is the body of a loan create or update
type SaveLoanRequest struct {
	Game      *ReferenceRequest `json:"game" validate:"required"`
	Client    *ReferenceRequest `json:"client" validate:"required"`
	StartDate string            `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string            `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// SortRequest orders a search by one property.
type SortRequest struct {
	Property  string `json:"property" validate:"required"`
	Direction string `json:"direction" validate:"omitempty,oneof=ASC DESC asc desc"`
}

// PageableRequest selects the page of a search.
type PageableRequest struct {
	PageNumber int           `json:"pageNumber" validate:"gte=0"`
	PageSize   int           `json:"pageSize" validate:"gte=0"`
	Sort       []SortRequest `json:"sort" validate:"omitempty,dive"`
}

// LoanSearchRequest is the body of a loan search. Every field is optional.
type LoanSearchRequest struct {
	GameID   *int64           `json:"gameId" validate:"omitempty,gt=0"`
	ClientID *int64           `json:"clientId" validate:"omitempty,gt=0"`
	Date     *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Pageable *PageableRequest `json:"pageable"`
}

// ScanTicketRequest carries the content read from a loan ticket.
type ScanTicketRequest struct {
	Content string `json:"content" validate:"required"`
}

// GameResponse is the game embedded in a loan.
type GameResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Age      int    `json:"age"`
	Category string `json:"category,omitempty"`
	Author   string `json:"author,omitempty"`
}

// ClientResponse is the client embedded in a loan.
type ClientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LoanResponse is a loan as returned by the API.
type LoanResponse struct {
	ID        int64           `json:"id"`
	Game      *GameResponse   `json:"game"`
	Client    *ClientResponse `json:"client"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
}

// LoanPageResponse is one page of a loan search.
type LoanPageResponse struct {
	Content       []*LoanResponse `json:"content"`
	PageNumber    int             `json:"pageNumber"`
	PageSize      int             `json:"pageSize"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
}

// LoanEventResponse is one entry of a loan's audit trail.
type LoanEventResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	LoanID     int64     `json:"loanId"`
	GameID     int64     `json:"gameId"`
	ClientID   int64     `json:"clientId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	RequestID  string    `json:"requestId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	ReceivedAt time.Time `json:"receivedAt"`
}

func (r *SaveLoanRequest) toInput() (*usecase.SaveLoanInput, error) {
	start, err := entity.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := entity.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &usecase.SaveLoanInput{
		GameID:    r.Game.ID,
		ClientID:  r.Client.ID,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func (r *LoanSearchRequest) toSearch() (*usecase.LoanSearch, error) {
	search := &usecase.LoanSearch{
		GameID:   r.GameID,
		ClientID: r.ClientID,
	}

	if r.Date != nil {
		date, err := entity.ParseDate(*r.Date)
		if err != nil {
			return nil, err
		}
		search.Date = &date
	}

	if r.Pageable != nil {
		pageable := &entity.Pageable{
			PageNumber: r.Pageable.PageNumber,
			PageSize:   r.Pageable.PageSize,
		}
		for _, order := range r.Pageable.Sort {
			pageable.Sort = append(pageable.Sort, entity.SortOrder{
				Property:  order.Property,
				Direction: entity.ParseSortDirection(order.Direction),
			})
		}
		search.Pageable = pageable
	}

	return search, nil
}

func toLoanResponse(loan *entity.Loan) *LoanResponse {
	resp := &LoanResponse{
		ID:        loan.ID,
		Game:      &GameResponse{ID: loan.GameID},
		Client:    &ClientResponse{ID: loan.ClientID},
		StartDate: entity.FormatDate(loan.StartDate),
		EndDate:   entity.FormatDate(loan.EndDate),
	}
	if loan.Game != nil {
		resp.Game = &GameResponse{
			ID:       loan.Game.ID,
			Title:    loan.Game.Title,
			Age:      loan.Game.Age,
			Category: loan.Game.CategoryName,
			Author:   loan.Game.AuthorName,
		}
	}
	if loan.Client != nil {
		resp.Client = &ClientResponse{ID: loan.Client.ID, Name: loan.Client.Name}
	}

	return resp
}

func toLoanPageResponse(page *entity.Page[*entity.Loan]) *LoanPageResponse {
	content := make([]*LoanResponse, 0, len(page.Content))
	for _, loan := range page.Content {
		content = append(content, toLoanResponse(loan))
	}

	return &LoanPageResponse{
		Content:       content,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}

func toLoanEventResponses(entries []*entity.LoanAuditEntry) []*LoanEventResponse {
	events := make([]*LoanEventResponse, 0, len(entries))
	for _, entry := range entries {
		events = append(events, &LoanEventResponse{
			ID:         entry.ID.String(),
			Type:       string(entry.Type),
			LoanID:     entry.LoanID,
			GameID:     entry.GameID,
			ClientID:   entry.ClientID,
			StartDate:  entity.FormatDate(entry.StartDate),
			EndDate:    entity.FormatDate(entry.EndDate),
			RequestID:  entry.RequestID,
			OccurredAt: entry.OccurredAt,
			ReceivedAt: entry.ReceivedAt,
		})
	}

	return events
}
