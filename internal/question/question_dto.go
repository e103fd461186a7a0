package question

import "time"

type CreateQuestionRequest struct {
	CompanyID string `json:"company_id" binding:"required,uuid"`
	Content   string `json:"content" binding:"required"`
}

// company_id is deliberately absent: the parent reference is fixed at
// creation time.
type UpdateQuestionRequest struct {
	Content *string `json:"content"`
}

type QuestionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CompanyID string    `json:"company_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
