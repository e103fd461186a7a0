package offer

import (
	"time"

	"jobtrack/internal/auth"
	"jobtrack/internal/company"

	"github.com/google/uuid"
)

type Offer struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Owner      auth.User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CompanyID  *uuid.UUID       `gorm:"type:uuid;index"`
	Company    *company.Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Notes      *string          `gorm:"type:text"`
	CTC        *string          `gorm:"type:varchar(255)"`
	ReceivedAt time.Time        `gorm:"not null"`
	IsAccepted bool             `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Offer) TableName() string {
	return "offers"
}
