package company

import (
	"time"

	"jobtrack/internal/auth"

	"github.com/google/uuid"
)

// Company is owned by exactly one user. Questions, applications, offers
// and resumes hang off it with ON DELETE CASCADE.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Owner     auth.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Company) TableName() string {
	return "companies"
}
