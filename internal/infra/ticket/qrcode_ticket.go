package ticket

import (
	"strconv"
	"strings"

	"ludoteca/config"
	"ludoteca/internal/domain/service"
	"ludoteca/internal/errors"

	"github.com/skip2/go-qrcode"
)

const loanPathSegment = "/loans/"

// ErrNotLoanTicket is returned when scanned content was not issued by this service.
var ErrNotLoanTicket = errors.New("not a loan ticket")

type qrcodeTicketService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	prefix               string
}

// NewTicketService creates a QR ticket service from the ticket configuration.
func NewTicketService(cfg *config.Config) service.TicketService {
	ticketCfg := &config.TicketConfig{}
	if cfg != nil && cfg.Ticket != nil {
		ticketCfg = cfg.Ticket
	}

	return NewQRCodeTicketService(ticketCfg.Size, ticketCfg.ErrorCorrectionLevel, ticketCfg.BaseURL)
}

// NewQRCodeTicketService creates a ticket service rendering size x size PNGs
// that encode <baseURL>/loans/<id>.
func NewQRCodeTicketService(size int, errorCorrectionLevel, baseURL string) service.TicketService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = 256
	}

	return &qrcodeTicketService{
		size:                 size,
		errorCorrectionLevel: level,
		prefix:               strings.TrimRight(baseURL, "/") + loanPathSegment,
	}
}

// GenerateLoanTicket renders the ticket of a loan as a PNG image.
func (s *qrcodeTicketService) GenerateLoanTicket(loanID int64) ([]byte, error) {
	if loanID <= 0 {
		return nil, errors.Errorf("invalid loan id %d", loanID)
	}

	qrCode, err := qrcode.New(s.prefix+strconv.FormatInt(loanID, 10), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseLoanTicket returns the loan id encoded in scanned ticket content.
func (s *qrcodeTicketService) ParseLoanTicket(content string) (int64, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(content), s.prefix)
	if !ok {
		return 0, ErrNotLoanTicket
	}

	loanID, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || loanID <= 0 {
		return 0, errors.Wrapf(ErrNotLoanTicket, "invalid loan id %q", rest)
	}

	return loanID, nil
}
