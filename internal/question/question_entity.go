package question

import (
	"time"

	"jobtrack/internal/auth"
	"jobtrack/internal/company"

	"github.com/google/uuid"
)

type Question struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Owner     auth.User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Company   company.Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Content   string          `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Question) TableName() string {
	return "questions"
}
