package events

import "time"

const ApplicationSubmittedTopic = "jobtrack.application.submitted"

// ApplicationSubmittedEvent is emitted through the outbox whenever a user
// records a new application against a company.
type ApplicationSubmittedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	UserID        string    `json:"user_id"`
	CompanyID     string    `json:"company_id"`
	Source        string    `json:"source,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
