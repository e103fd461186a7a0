package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the account identity. Deleting a user removes every owned row
// through the FK cascades declared on the owning entities.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username  *string   `gorm:"type:varchar(255);uniqueIndex"`
	FirstName *string   `gorm:"type:varchar(100)"`
	LastName  *string   `gorm:"type:varchar(100)"`
	Password  string    `gorm:"type:varchar(255);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	IsStaff   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
