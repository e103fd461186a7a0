package question

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, q *Question) error
	FindAll(ctx context.Context) ([]Question, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]Question, error)
	FindByID(ctx context.Context, id string) (*Question, error)
	Update(ctx context.Context, q *Question) error
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

func (r *repository) Create(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Question, error) {
	var questions []Question
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&questions).Error
	return questions, err
}

func (r *repository) FindAllByOwner(ctx context.Context, ownerID string) ([]Question, error) {
	var questions []Question
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Question, error) {
	var q Question
	err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error
	return &q, err
}

func (r *repository) Update(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Question{}, "id = ?", id).Error
}
