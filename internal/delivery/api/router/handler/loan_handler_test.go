package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "ludoteca/internal/delivery/api/middleware"
	"ludoteca/internal/delivery/api/validator"
	"ludoteca/internal/domain/entity"
	domainerrors "ludoteca/internal/domain/errors"
	"ludoteca/internal/errors"
	mockUsecase "ludoteca/internal/mocks/usecase"
	"ludoteca/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

type handlerFixture struct {
	echo    *echo.Echo
	loanUC  *mockUsecase.MockLoanUsecase
	auditUC *mockUsecase.MockLoanAuditUsecase
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &handlerFixture{
		echo:    echo.New(),
		loanUC:  mockUsecase.NewMockLoanUsecase(t),
		auditUC: mockUsecase.NewMockLoanAuditUsecase(t),
	}
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewLoanHandler(LoanHandlerParams{LoanUC: f.loanUC, AuditUC: f.auditUC, Logger: logger})
	loans := f.echo.Group("/api/v1/loans")
	loans.POST("/search", h.SearchLoans)
	loans.GET("", h.ListLoans)
	loans.GET("/:id", h.GetLoan)
	loans.PUT("", h.CreateLoan)
	loans.PUT("/:id", h.UpdateLoan)
	loans.DELETE("/:id", h.DeleteLoan)
	loans.GET("/:id/ticket", h.GetLoanTicket)
	loans.POST("/tickets/scan", h.ScanLoanTicket)
	loans.GET("/:id/events", h.ListLoanEvents)

	return f
}

func (f *handlerFixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func sampleLoan() *entity.Loan {
	return &entity.Loan{
		ID:        3,
		GameID:    1,
		ClientID:  2,
		Game:      &entity.Game{ID: 1, Title: "Catan", Age: 10, CategoryName: "Euro", AuthorName: "Klaus Teuber"},
		Client:    &entity.Client{ID: 2, Name: "Ana"},
		StartDate: entity.NewDate(2024, 1, 1),
		EndDate:   entity.NewDate(2024, 1, 5),
	}
}

func TestLoanHandler_GetLoan(t *testing.T) {
	f := newHandlerFixture(t)
	f.loanUC.EXPECT().GetLoan(mock.Anything, int64(3)).Return(sampleLoan(), nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/loans/3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var loan LoanResponse
	require.NoError(t, json.Unmarshal(env.Data, &loan))
	assert.Equal(t, int64(3), loan.ID)
	assert.Equal(t, "Catan", loan.Game.Title)
	assert.Equal(t, "Ana", loan.Client.Name)
	assert.Equal(t, "2024-01-01", loan.StartDate)
	assert.Equal(t, "2024-01-05", loan.EndDate)
}

func TestLoanHandler_GetLoan_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	f.loanUC.EXPECT().GetLoan(mock.Anything, int64(9)).Return(nil, domainerrors.NewNotFoundError("loan", 9))

	rec, env := f.do(t, http.MethodGet, "/api/v1/loans/9", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "LOAN_NOT_FOUND", env.Error.Code)
}

func TestLoanHandler_GetLoan_InvalidID(t *testing.T) {
	f := newHandlerFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/v1/loans/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestLoanHandler_SearchLoans_QueryOverridesBody(t *testing.T) {
	f := newHandlerFixture(t)

	f.loanUC.EXPECT().FindPage(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, search *usecase.LoanSearch) (*entity.Page[*entity.Loan], error) {
			require.NotNil(t, search.GameID)
			assert.Equal(t, int64(7), *search.GameID)
			require.NotNil(t, search.ClientID)
			assert.Equal(t, int64(2), *search.ClientID)
			require.NotNil(t, search.Date)
			assert.Equal(t, entity.NewDate(2024, 1, 3), *search.Date)
			require.NotNil(t, search.Pageable)
			assert.Equal(t, 1, search.Pageable.PageNumber)
			assert.Equal(t, 5, search.Pageable.PageSize)
			assert.Equal(t, []entity.SortOrder{{Property: "startDate", Direction: entity.SortDesc}}, search.Pageable.Sort)

			return entity.NewPage([]*entity.Loan{sampleLoan()}, *search.Pageable, 6), nil
		})

	body := `{"gameId":1,"clientId":2,"date":"2023-12-31","pageable":{"pageNumber":1,"pageSize":5,"sort":[{"property":"startDate","direction":"DESC"}]}}`
	rec, env := f.do(t, http.MethodPost, "/api/v1/loans/search?idGame=7&date=2024-01-03", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var page LoanPageResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Content, 1)
	assert.Equal(t, int64(6), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
}

func TestLoanHandler_SearchLoans_EmptyBody(t *testing.T) {
	f := newHandlerFixture(t)

	f.loanUC.EXPECT().FindPage(mock.Anything, &usecase.LoanSearch{}).
		Return(entity.NewPage[*entity.Loan](nil, entity.DefaultPageable(), 0), nil)

	rec, env := f.do(t, http.MethodPost, "/api/v1/loans/search", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var page LoanPageResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Empty(t, page.Content)
	assert.NotNil(t, page.Content)
}

func TestLoanHandler_SearchLoans_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		wantCode string
	}{
		{
			name:     "malformed date",
			target:   "/api/v1/loans/search",
			body:     `{"date":"03/01/2024"}`,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "non numeric game query",
			target:   "/api/v1/loans/search?idGame=x",
			body:     `{}`,
			wantCode: "INVALID_QUERY",
		},
		{
			name:     "negative page",
			target:   "/api/v1/loans/search",
			body:     `{"pageable":{"pageNumber":-1}}`,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "unknown direction",
			target:   "/api/v1/loans/search",
			body:     `{"pageable":{"sort":[{"property":"id","direction":"sideways"}]}}`,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "broken json",
			target:   "/api/v1/loans/search",
			body:     `{"gameId":`,
			wantCode: "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)

			rec, env := f.do(t, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestLoanHandler_ListLoans_FromQuery(t *testing.T) {
	f := newHandlerFixture(t)

	f.loanUC.EXPECT().FindPage(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, search *usecase.LoanSearch) (*entity.Page[*entity.Loan], error) {
			assert.Nil(t, search.GameID)
			require.NotNil(t, search.ClientID)
			assert.Equal(t, int64(2), *search.ClientID)
			require.NotNil(t, search.Pageable)
			assert.Equal(t, 2, search.Pageable.PageNumber)
			assert.Equal(t, 20, search.Pageable.PageSize)
			assert.Equal(t, []entity.SortOrder{
				{Property: "game.title", Direction: entity.SortAsc},
				{Property: "endDate", Direction: entity.SortDesc},
			}, search.Pageable.Sort)

			return entity.NewPage[*entity.Loan](nil, *search.Pageable, 0), nil
		})

	rec, _ := f.do(t, http.MethodGet, "/api/v1/loans?idClient=2&page=2&size=20&sort=game.title,asc&sort=endDate,desc", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoanHandler_ListLoans_InvalidSortProperty(t *testing.T) {
	f := newHandlerFixture(t)

	f.loanUC.EXPECT().FindPage(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidSortProperty.WithDetails("game.price"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/loans?sort=game.price", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_SORT_PROPERTY", env.Error.Code)
}

func TestLoanHandler_CreateLoan(t *testing.T) {
	f := newHandlerFixture(t)

	expected := &usecase.SaveLoanInput{
		GameID:    1,
		ClientID:  2,
		StartDate: entity.NewDate(2024, 1, 1),
		EndDate:   entity.NewDate(2024, 1, 5),
	}
	f.loanUC.EXPECT().SaveLoan(mock.Anything, (*int64)(nil), expected).Return(sampleLoan(), nil)

	body := `{"game":{"id":1},"client":{"id":2},"startDate":"2024-01-01","endDate":"2024-01-05"}`
	rec, env := f.do(t, http.MethodPut, "/api/v1/loans", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var loan LoanResponse
	require.NoError(t, json.Unmarshal(env.Data, &loan))
	assert.Equal(t, int64(3), loan.ID)
}

func TestLoanHandler_UpdateLoan(t *testing.T) {
	f := newHandlerFixture(t)

	f.loanUC.EXPECT().SaveLoan(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id *int64, input *usecase.SaveLoanInput) (*entity.Loan, error) {
			require.NotNil(t, id)
			assert.Equal(t, int64(3), *id)
			assert.Equal(t, int64(1), input.GameID)

			return sampleLoan(), nil
		})

	body := `{"game":{"id":1},"client":{"id":2},"startDate":"2024-01-01","endDate":"2024-01-05"}`
	rec, _ := f.do(t, http.MethodPut, "/api/v1/loans/3", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoanHandler_SaveLoan_Rejected(t *testing.T) {
	f := newHandlerFixture(t)

	rejection := domainerrors.NewLoanValidationError(domainerrors.ReasonGameConflict, "game already loaned in that period")
	f.loanUC.EXPECT().SaveLoan(mock.Anything, (*int64)(nil), mock.Anything).Return(nil, errors.Wrap(rejection, "save loan"))

	body := `{"game":{"id":1},"client":{"id":2},"startDate":"2024-01-01","endDate":"2024-01-05"}`
	rec, env := f.do(t, http.MethodPut, "/api/v1/loans", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "LOAN_GAME_CONFLICT", env.Error.Code)
	assert.Equal(t, "game already loaned in that period", env.Error.Message)
}

func TestLoanHandler_SaveLoan_ValidationDetails(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"client":{"id":0},"startDate":"2024-01-01","endDate":"tomorrow"}`
	rec, env := f.do(t, http.MethodPut, "/api/v1/loans", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "required", env.Error.Details["game"])
	assert.Equal(t, "required", env.Error.Details["client.id"])
	assert.Equal(t, "datetime=2006-01-02", env.Error.Details["endDate"])
}

func TestLoanHandler_SaveLoan_StoreFailureHidesDetails(t *testing.T) {
	f := newHandlerFixture(t)

	f.loanUC.EXPECT().SaveLoan(mock.Anything, (*int64)(nil), mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert loan"))

	body := `{"game":{"id":1},"client":{"id":2},"startDate":"2024-01-01","endDate":"2024-01-05"}`
	rec, env := f.do(t, http.MethodPut, "/api/v1/loans", body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestLoanHandler_DeleteLoan(t *testing.T) {
	f := newHandlerFixture(t)
	f.loanUC.EXPECT().DeleteLoan(mock.Anything, int64(3)).Return(nil)

	rec, _ := f.do(t, http.MethodDelete, "/api/v1/loans/3", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLoanHandler_DeleteLoan_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	f.loanUC.EXPECT().DeleteLoan(mock.Anything, int64(4)).Return(domainerrors.NewNotFoundError("loan", 4))

	rec, env := f.do(t, http.MethodDelete, "/api/v1/loans/4", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "LOAN_NOT_FOUND", env.Error.Code)
}

func TestLoanHandler_GetLoanTicket(t *testing.T) {
	f := newHandlerFixture(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	f.loanUC.EXPECT().GenerateTicket(mock.Anything, int64(3)).Return(png, nil)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/loans/3/ticket", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestLoanHandler_ScanLoanTicket(t *testing.T) {
	f := newHandlerFixture(t)
	f.loanUC.EXPECT().ScanTicket(mock.Anything, "https://ludoteca.local/loans/3").Return(sampleLoan(), nil)

	rec, env := f.do(t, http.MethodPost, "/api/v1/loans/tickets/scan", `{"content":"https://ludoteca.local/loans/3"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var loan LoanResponse
	require.NoError(t, json.Unmarshal(env.Data, &loan))
	assert.Equal(t, int64(3), loan.ID)
}

func TestLoanHandler_ScanLoanTicket_Invalid(t *testing.T) {
	f := newHandlerFixture(t)
	f.loanUC.EXPECT().ScanTicket(mock.Anything, "hello").Return(nil, domainerrors.ErrInvalidTicket.WithDetails("not a loan ticket"))

	rec, env := f.do(t, http.MethodPost, "/api/v1/loans/tickets/scan", `{"content":"hello"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TICKET", env.Error.Code)
}

func TestLoanHandler_ListLoanEvents(t *testing.T) {
	f := newHandlerFixture(t)
	entries := []*entity.LoanAuditEntry{{
		ID:        uuid.MustParse("0190a8f0-0000-7000-8000-000000000001"),
		Type:      entity.LoanCreated,
		LoanID:    3,
		GameID:    1,
		ClientID:  2,
		StartDate: entity.NewDate(2024, 1, 1),
		EndDate:   entity.NewDate(2024, 1, 5),
	}}
	f.auditUC.EXPECT().ListLoanEvents(mock.Anything, int64(3)).Return(entries, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/loans/3/events", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var events []LoanEventResponse
	require.NoError(t, json.Unmarshal(env.Data, &events))
	require.Len(t, events, 1)
	assert.Equal(t, "loan.created", events[0].Type)
	assert.Equal(t, "2024-01-05", events[0].EndDate)
}
