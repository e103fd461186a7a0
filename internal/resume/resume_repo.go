package resume

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, res *Resume) error
	FindAll(ctx context.Context) ([]Resume, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]Resume, error)
	FindByID(ctx context.Context, id string) (*Resume, error)
	Update(ctx context.Context, res *Resume) error
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

func (r *repository) Create(ctx context.Context, res *Resume) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Resume, error) {
	var resumes []Resume
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&resumes).Error
	return resumes, err
}

func (r *repository) FindAllByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	var resumes []Resume
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Resume, error) {
	var res Resume
	err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return &res, err
}

func (r *repository) Update(ctx context.Context, res *Resume) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Resume{}, "id = ?", id).Error
}
