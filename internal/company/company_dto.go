package company

import "time"

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCompanyRequest serves both PATCH (absent fields untouched) and PUT
// (all mutable fields required). The owner is never updatable.
type UpdateCompanyRequest struct {
	Name *string `json:"name"`
}

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
