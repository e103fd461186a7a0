package offer

import "time"

type CreateOfferRequest struct {
	CompanyID  *string `json:"company_id" binding:"omitempty,uuid"`
	Notes      *string `json:"notes"`
	CTC        *string `json:"ctc"`
	ReceivedAt string  `json:"received_at" binding:"required"`
	IsAccepted bool    `json:"is_accepted"`
}

type UpdateOfferRequest struct {
	Notes      *string `json:"notes"`
	CTC        *string `json:"ctc"`
	ReceivedAt *string `json:"received_at"`
	IsAccepted *bool   `json:"is_accepted"`
}

type OfferResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CompanyID  *string   `json:"company_id"`
	Notes      *string   `json:"notes"`
	CTC        *string   `json:"ctc"`
	ReceivedAt time.Time `json:"received_at"`
	IsAccepted bool      `json:"is_accepted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
