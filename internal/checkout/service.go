package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/angelmondragon/threadline-backend/internal/cart"
	"github.com/angelmondragon/threadline-backend/internal/discounts"
	"github.com/angelmondragon/threadline-backend/internal/orders"
	"github.com/angelmondragon/threadline-backend/pkg/config"
	"github.com/angelmondragon/threadline-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/threadline-backend/pkg/errors"
	"github.com/angelmondragon/threadline-backend/pkg/metrics"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Checkout failure messages shown directly to shoppers.
const (
	MsgEmptyCart = "Cart is empty."
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Result is the outcome of a successful checkout.
type Result struct {
	Order           orders.OrderDTO    `json:"order"`
	NewDiscountCode *discounts.CodeDTO `json:"new_discount_code,omitempty"`
	Message         string             `json:"message"`
}

// Service executes checkouts: it converts the working cart into an immutable
// order, redeems at most one discount code, and mints a fresh code on every
// nth order.
type Service interface {
	Execute(ctx context.Context, discountCode string) (*Result, error)
}

// Deps wires the orchestrator to the rest of the store.
type Deps struct {
	Cart      cart.Repository
	Orders    orders.Repository
	Discounts discounts.Repository
	Tx        txRunner
	Store     config.StoreConfig
	Metrics   *metrics.StoreMetrics
}

type service struct {
	cart      cart.Repository
	orders    orders.Repository
	discounts discounts.Repository
	tx        txRunner
	store     config.StoreConfig
	metrics   *metrics.StoreMetrics

	// Serializes checkouts so order numbering and nth-order code minting
	// never race, even across concurrent requests.
	mu sync.Mutex
}

// NewService builds a checkout service from its dependencies.
func NewService(deps Deps) (Service, error) {
	if deps.Cart == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if deps.Orders == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if deps.Discounts == nil {
		return nil, fmt.Errorf("discounts repository required")
	}
	if deps.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if err := deps.Store.Validate(); err != nil {
		return nil, fmt.Errorf("store config: %w", err)
	}
	return &service{
		cart:      deps.Cart,
		orders:    deps.Orders,
		discounts: deps.Discounts,
		tx:        deps.Tx,
		store:     deps.Store,
		metrics:   deps.Metrics,
	}, nil
}

// Execute places an order from the current cart. An invalid or already used
// code fails the whole checkout before any state changes; on success the cart
// is cleared and, when the order number is a multiple of the configured
// interval, a new discount code is minted and returned alongside the order.
func (s *service) Execute(ctx context.Context, discountCode string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := discounts.Normalize(discountCode)

	var (
		created *models.Order
		minted  *models.DiscountCode
	)

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		cartRepo := s.cart.WithTx(tx)
		orderRepo := s.orders.WithTx(tx)
		discountRepo := s.discounts.WithTx(tx)

		items, err := cartRepo.ListItems(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
		}
		if len(items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, MsgEmptyCart)
		}

		var redeemed *models.DiscountCode
		if normalized != "" {
			redeemed, err = discountRepo.FindUnusedByCode(ctx, normalized)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeStateConflict, discounts.MsgInvalidCode)
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up discount code")
			}
		}

		lines := make([]models.OrderLineItem, 0, len(items))
		var subtotalCents int64
		for i := range items {
			item := &items[i]
			if item.Product == nil {
				return pkgerrors.New(pkgerrors.CodeInternal, "cart line missing product")
			}
			lineCents := item.Product.PriceCents * int64(item.Quantity)
			lines = append(lines, models.OrderLineItem{
				ProductID:         item.ProductID,
				ProductName:       item.Product.Name,
				UnitPriceCents:    item.Product.PriceCents,
				Quantity:          item.Quantity,
				LineSubtotalCents: lineCents,
			})
			subtotalCents += lineCents
		}

		var (
			discountCents int64
			appliedCode   *string
		)
		if redeemed != nil {
			discountCents = discountAmountCents(subtotalCents, redeemed.Percentage)
			appliedCode = &redeemed.Code
		}

		count, err := orderRepo.Count(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count orders")
		}
		orderID := count + 1

		created, err = orderRepo.Create(ctx, &models.Order{
			ID:                  orderID,
			SubtotalCents:       subtotalCents,
			DiscountCode:        appliedCode,
			DiscountAmountCents: discountCents,
			TotalCents:          subtotalCents - discountCents,
			Items:               lines,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append order")
		}

		if redeemed != nil {
			if err := discountRepo.MarkUsed(ctx, redeemed.Code); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark code used")
			}
		}

		if err := cartRepo.Clear(ctx); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}

		if orderID%int64(s.store.NthOrderForDiscount) == 0 {
			minted, err = discounts.IssueCode(ctx, discountRepo, s.store.DiscountPercentage, &orderID)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.metrics.IncCheckoutFailure(failureReason(err))
		return nil, err
	}

	s.metrics.IncOrder(created.TotalCents)

	result := &Result{
		Order:   orders.NewOrderDTO(created),
		Message: "Order placed successfully!",
	}
	if minted != nil {
		s.metrics.IncCodeIssued("checkout")
		dto := discounts.NewCodeDTO(minted)
		result.NewDiscountCode = &dto
		result.Message = fmt.Sprintf("Order placed successfully! You've earned a %d%% discount code: %s",
			minted.Percentage, minted.Code)
	}
	return result, nil
}

// discountAmountCents rounds half-up to whole cents.
func discountAmountCents(subtotalCents int64, percentage int) int64 {
	return decimal.NewFromInt(subtotalCents).
		Mul(decimal.NewFromInt(int64(percentage))).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

func failureReason(err error) string {
	typed := pkgerrors.As(err)
	if typed == nil {
		return "internal"
	}
	switch typed.Code() {
	case pkgerrors.CodeValidation:
		return "empty_cart"
	case pkgerrors.CodeStateConflict:
		return "invalid_code"
	default:
		return "dependency"
	}
}
