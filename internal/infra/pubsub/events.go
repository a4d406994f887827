package pubsub

import (
	"strconv"

	"ludoteca/internal/domain/service"
)

const localSubscription = "projects/local/subscriptions/loan-events-sub"

// eventAttributes are the message attributes used for filtering and tracing.
func eventAttributes(event *service.LoanEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"type":     event.Type,
		"loan_id":  strconv.FormatInt(event.LoanID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
