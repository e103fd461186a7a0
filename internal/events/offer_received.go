package events

import "time"

const OfferReceivedTopic = "jobtrack.offer.received"

type OfferReceivedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	OfferID    string    `json:"offer_id"`
	UserID     string    `json:"user_id"`
	CompanyID  string    `json:"company_id,omitempty"`
	IsAccepted bool      `json:"is_accepted"`
	OccurredAt time.Time `json:"occurred_at"`
}
