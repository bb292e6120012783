package discounts

import (
	"context"

	"github.com/angelmondragon/threadline-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes persistence for the discount code registry.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindUnusedByCode(ctx context.Context, code string) (*models.DiscountCode, error)
	Create(ctx context.Context, code *models.DiscountCode) (*models.DiscountCode, error)
	MarkUsed(ctx context.Context, code string) error
	List(ctx context.Context) ([]models.DiscountCode, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a discounts repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindUnusedByCode(ctx context.Context, code string) (*models.DiscountCode, error) {
	var record models.DiscountCode
	err := r.db.WithContext(ctx).
		Where("code = ? AND used = ?", code, false).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) Create(ctx context.Context, code *models.DiscountCode) (*models.DiscountCode, error) {
	if err := r.db.WithContext(ctx).Create(code).Error; err != nil {
		return nil, err
	}
	return code, nil
}

// MarkUsed flips the used flag. Updating a code that does not exist touches
// zero rows and is not an error.
func (r *repository) MarkUsed(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).
		Model(&models.DiscountCode{}).
		Where("code = ?", code).
		Update("used", true).Error
}

func (r *repository) List(ctx context.Context) ([]models.DiscountCode, error) {
	var codes []models.DiscountCode
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}
