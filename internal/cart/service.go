package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/threadline-backend/internal/catalog"
	"github.com/angelmondragon/threadline-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/threadline-backend/pkg/errors"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the cart ledger operations.
type Service interface {
	AddItem(ctx context.Context, productID string) (*View, error)
	RemoveItem(ctx context.Context, productID string) (*View, error)
	SetQuantity(ctx context.Context, productID string, quantity int) (*View, error)
	Clear(ctx context.Context) (*View, error)
	GetCart(ctx context.Context) (*View, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	catalog catalog.Repository
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo Repository, tx txRunner, catalogRepo catalog.Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if catalogRepo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		catalog: catalogRepo,
	}, nil
}

// AddItem increments the line for the product, creating it at quantity 1.
func (s *service) AddItem(ctx context.Context, productID string) (*View, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		item, err := txRepo.FindByProductID(ctx, product.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if item != nil {
			item.Quantity++
			_, err = txRepo.Update(ctx, item)
			return err
		}

		_, err = txRepo.Create(ctx, &models.CartItem{
			ProductID: product.ID,
			Quantity:  1,
		})
		return err
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart line")
	}

	return s.GetCart(ctx)
}

// RemoveItem deletes the line if present; an absent product is a no-op.
func (s *service) RemoveItem(ctx context.Context, productID string) (*View, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	if err := s.repo.DeleteByProductID(ctx, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart line")
	}
	return s.GetCart(ctx)
}

// SetQuantity sets the line to exactly quantity. A non-positive quantity
// removes the line. Setting a product that is not in the cart is a no-op.
func (s *service) SetQuantity(ctx context.Context, productID string, quantity int) (*View, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		item, err := txRepo.FindByProductID(ctx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		item.Quantity = quantity
		_, err = txRepo.Update(ctx, item)
		return err
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart line")
	}

	return s.GetCart(ctx)
}

// Clear empties the cart.
func (s *service) Clear(ctx context.Context) (*View, error) {
	if err := s.repo.Clear(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return s.GetCart(ctx)
}

// GetCart returns the current lines with derived subtotal and item count.
func (s *service) GetCart(ctx context.Context) (*View, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return NewView(items), nil
}
