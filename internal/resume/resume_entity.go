package resume

import (
	"time"

	"jobtrack/internal/auth"
	"jobtrack/internal/company"

	"github.com/google/uuid"
)

type Resume struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Owner       auth.User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Company     company.Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	FileName    string          `gorm:"type:varchar(255);not null"`
	FileKey     string          `gorm:"type:varchar(512);not null"`
	ContentType string          `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Resume) TableName() string {
	return "resumes"
}
