package catalog

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the persistence surface for catalog entries.
type Repository interface {
	Migrate(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	CreateBatch(ctx context.Context, products []Product) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a GORM-backed catalog repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&Product{})
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Product{}).Count(&count).Error
	return count, err
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC, id ASC").
		Find(&products).Error
	return products, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) CreateBatch(ctx context.Context, products []Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&products).Error
}
