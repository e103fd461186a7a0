package interview

import (
	"time"

	"jobtrack/internal/application"

	"github.com/google/uuid"
)

// Interview carries no owner column of its own; ownership is transitive
// through the parent application.
type Interview struct {
	ID            uuid.UUID               `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicationID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Application   application.Application `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Notes         string                  `gorm:"type:text;not null"`
	Round         *string                 `gorm:"type:varchar(255)"`
	ScheduledAt   time.Time               `gorm:"not null"`
	Result        *string                 `gorm:"type:varchar(50)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Interview) TableName() string {
	return "interviews"
}
