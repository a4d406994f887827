package service

// TicketService renders and reads the QR tickets handed out with a loan
type TicketService interface {
	// GenerateLoanTicket renders the ticket of a loan as a PNG image
	GenerateLoanTicket(loanID int64) ([]byte, error)

	// ParseLoanTicket reads the content scanned from a ticket and returns the loan ID
	ParseLoanTicket(content string) (int64, error)
}
