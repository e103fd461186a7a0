package offer

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, o *Offer) error
	FindAll(ctx context.Context) ([]Offer, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]Offer, error)
	FindByID(ctx context.Context, id string) (*Offer, error)
	Update(ctx context.Context, o *Offer) error
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

func (r *repository) Create(ctx context.Context, o *Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Offer, error) {
	var offers []Offer
	err := r.db.WithContext(ctx).Order("received_at DESC").Find(&offers).Error
	return offers, err
}

func (r *repository) FindAllByOwner(ctx context.Context, ownerID string) ([]Offer, error) {
	var offers []Offer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("received_at DESC").
		Find(&offers).Error
	return offers, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Offer, error) {
	var o Offer
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	return &o, err
}

func (r *repository) Update(ctx context.Context, o *Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Offer{}, "id = ?", id).Error
}
