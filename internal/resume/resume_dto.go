package resume

import "time"

// CreateResumeRequest is assembled by the handler from the multipart form;
// Data holds the raw file bytes.
type CreateResumeRequest struct {
	CompanyID string
	FileName  string
	Data      []byte
}

// UpdateResumeRequest replaces the stored file when Data is present.
type UpdateResumeRequest struct {
	FileName string
	Data     []byte
}

type ResumeResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyID   string    `json:"company_id"`
	FileName    string    `json:"file_name"`
	FileKey     string    `json:"file_key"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
