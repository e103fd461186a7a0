package application

import (
	"time"

	"jobtrack/internal/auth"
	"jobtrack/internal/company"

	"github.com/google/uuid"
)

// Application records one submission against a company. Interviews cascade
// from it.
type Application struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Owner     auth.User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Company   company.Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Notes     string          `gorm:"type:text;not null"`
	Source    *string         `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Application) TableName() string {
	return "applications"
}
