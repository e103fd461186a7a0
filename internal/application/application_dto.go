package application

import "time"

type CreateApplicationRequest struct {
	CompanyID string  `json:"company_id" binding:"required,uuid"`
	Notes     string  `json:"notes" binding:"required"`
	Source    *string `json:"source"`
}

type UpdateApplicationRequest struct {
	Notes  *string `json:"notes"`
	Source *string `json:"source"`
}

type ApplicationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CompanyID string    `json:"company_id"`
	Notes     string    `json:"notes"`
	Source    *string   `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
