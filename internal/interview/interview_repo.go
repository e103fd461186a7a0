package interview

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, i *Interview) error
	FindAll(ctx context.Context) ([]Interview, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]Interview, error)
	FindByID(ctx context.Context, id string) (*Interview, error)
	Update(ctx context.Context, i *Interview) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, i *Interview) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Interview, error) {
	var interviews []Interview
	err := r.db.WithContext(ctx).Order("scheduled_at ASC").Find(&interviews).Error
	return interviews, err
}

// FindAllByOwner joins through applications since interviews have no
// user_id column.
func (r *repository) FindAllByOwner(ctx context.Context, ownerID string) ([]Interview, error) {
	var interviews []Interview
	err := r.db.WithContext(ctx).
		Joins("JOIN applications ON applications.id = interviews.application_id").
		Where("applications.user_id = ?", ownerID).
		Order("interviews.scheduled_at ASC").
		Find(&interviews).Error
	return interviews, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Interview, error) {
	var i Interview
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	return &i, err
}

func (r *repository) Update(ctx context.Context, i *Interview) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Interview{}, "id = ?", id).Error
}
