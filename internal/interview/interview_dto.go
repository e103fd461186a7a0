package interview

import "time"

type CreateInterviewRequest struct {
	ApplicationID string  `json:"application_id" binding:"required,uuid"`
	Notes         string  `json:"notes" binding:"required"`
	Round         *string `json:"round"`
	ScheduledAt   string  `json:"scheduled_at" binding:"required"`
	Result        *string `json:"result"`
}

type UpdateInterviewRequest struct {
	Notes       *string `json:"notes"`
	Round       *string `json:"round"`
	ScheduledAt *string `json:"scheduled_at"`
	Result      *string `json:"result"`
}

type InterviewResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	Notes         string    `json:"notes"`
	Round         *string   `json:"round"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Result        *string   `json:"result"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
