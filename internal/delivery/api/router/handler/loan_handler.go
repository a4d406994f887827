package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"ludoteca/internal/delivery/api/response"
	"ludoteca/internal/delivery/api/validator"
	"ludoteca/internal/errors"
	"ludoteca/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Query parameters accepted by the loan search endpoints.
const (
	queryGameID   = "idGame"
	queryClientID = "idClient"
	queryDate     = "date"
	queryPage     = "page"
	querySize     = "size"
	querySort     = "sort"
)

// LoanHandlerParams holds dependencies for LoanHandler, injected by Fx.
type LoanHandlerParams struct {
	fx.In

	LoanUC  usecase.LoanUsecase
	AuditUC usecase.LoanAuditUsecase
	Logger  *slog.Logger
}

// LoanHandler holds dependencies for loan-related handlers
type LoanHandler struct {
	loanUC  usecase.LoanUsecase
	auditUC usecase.LoanAuditUsecase
	logger  *slog.Logger
}

// NewLoanHandler is the constructor for LoanHandler
func NewLoanHandler(params LoanHandlerParams) *LoanHandler {
	return &LoanHandler{
		loanUC:  params.LoanUC,
		auditUC: params.AuditUC,
		logger:  params.Logger,
	}
}

// SearchLoans handles a paginated search described by the request body.
// The idGame, idClient and date query parameters take precedence over the body.
func (h *LoanHandler) SearchLoans(c echo.Context) error {
	var req LoanSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loan search input")
	}

	if err := applySearchQuery(c, &req); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	return h.findPage(c, &req)
}

// ListLoans handles a paginated search described by query parameters only.
// Sorting uses sort=property,direction and may be repeated.
func (h *LoanHandler) ListLoans(c echo.Context) error {
	var req LoanSearchRequest
	if err := applySearchQuery(c, &req); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	pageable, err := pageableFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}
	req.Pageable = pageable

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	return h.findPage(c, &req)
}

func (h *LoanHandler) findPage(c echo.Context, req *LoanSearchRequest) error {
	search, err := req.toSearch()
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	page, err := h.loanUC.FindPage(c.Request().Context(), search)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLoanPageResponse(page))
}

// GetLoan handles retrieving one loan
func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, ok := loanIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid loan ID")
	}

	loan, err := h.loanUC.GetLoan(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLoanResponse(loan))
}

// CreateLoan handles registering a new loan
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	return h.saveLoan(c, nil)
}

// UpdateLoan handles overwriting an existing loan
func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	id, ok := loanIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid loan ID")
	}

	return h.saveLoan(c, &id)
}

func (h *LoanHandler) saveLoan(c echo.Context, id *int64) error {
	var req SaveLoanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loan input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	loan, err := h.loanUC.SaveLoan(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if id == nil {
		status = http.StatusCreated
	}

	return response.Success(c, status, toLoanResponse(loan))
}

// DeleteLoan handles removing a loan
func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	id, ok := loanIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid loan ID")
	}

	if err := h.loanUC.DeleteLoan(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// GetLoanTicket renders the QR ticket of a loan as a PNG image
func (h *LoanHandler) GetLoanTicket(c echo.Context) error {
	id, ok := loanIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid loan ID")
	}

	png, err := h.loanUC.GenerateTicket(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=loan-"+strconv.FormatInt(id, 10)+".png")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanLoanTicket resolves the loan a scanned ticket belongs to
func (h *LoanHandler) ScanLoanTicket(c echo.Context) error {
	var req ScanTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ticket input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	loan, err := h.loanUC.ScanTicket(c.Request().Context(), req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLoanResponse(loan))
}

// ListLoanEvents returns the recorded audit trail of a loan
func (h *LoanHandler) ListLoanEvents(c echo.Context) error {
	id, ok := loanIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid loan ID")
	}

	entries, err := h.auditUC.ListLoanEvents(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLoanEventResponses(entries))
}

func loanIDParam(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func validationFailed(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
}

// applySearchQuery copies the filter query parameters over the request fields.
func applySearchQuery(c echo.Context, req *LoanSearchRequest) error {
	if value := c.QueryParam(queryGameID); value != "" {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return errInvalidQuery(queryGameID, value)
		}
		req.GameID = &id
	}

	if value := c.QueryParam(queryClientID); value != "" {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return errInvalidQuery(queryClientID, value)
		}
		req.ClientID = &id
	}

	if value := c.QueryParam(queryDate); value != "" {
		req.Date = &value
	}

	return nil
}

func pageableFromQuery(c echo.Context) (*PageableRequest, error) {
	params := c.QueryParams()
	if !params.Has(queryPage) && !params.Has(querySize) && !params.Has(querySort) {
		return nil, nil
	}

	pageable := &PageableRequest{}
	if value := params.Get(queryPage); value != "" {
		page, err := strconv.Atoi(value)
		if err != nil {
			return nil, errInvalidQuery(queryPage, value)
		}
		pageable.PageNumber = page
	}

	if value := params.Get(querySize); value != "" {
		size, err := strconv.Atoi(value)
		if err != nil {
			return nil, errInvalidQuery(querySize, value)
		}
		pageable.PageSize = size
	}

	for _, value := range params[querySort] {
		property, direction, _ := strings.Cut(value, ",")
		pageable.Sort = append(pageable.Sort, SortRequest{
			Property:  strings.TrimSpace(property),
			Direction: strings.ToUpper(strings.TrimSpace(direction)),
		})
	}

	return pageable, nil
}

func errInvalidQuery(name, value string) error {
	return errors.Errorf("invalid value %q for query parameter %s", value, name)
}
