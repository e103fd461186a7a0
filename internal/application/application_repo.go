package application

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Application) error
	FindAll(ctx context.Context) ([]Application, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]Application, error)
	FindByID(ctx context.Context, id string) (*Application, error)
	Update(ctx context.Context, a *Application) error
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

func (r *repository) Create(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Application, error) {
	var applications []Application
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&applications).Error
	return applications, err
}

func (r *repository) FindAllByOwner(ctx context.Context, ownerID string) ([]Application, error) {
	var applications []Application
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&applications).Error
	return applications, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Application{}, "id = ?", id).Error
}
