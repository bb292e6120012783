package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/threadline-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/threadline-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service exposes read access over the order journal.
type Service interface {
	ListOrders(ctx context.Context) ([]OrderDTO, error)
	GetOrder(ctx context.Context, id int64) (*OrderDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds an orders service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo}, nil
}

// OrderDTO is the journal entry shape returned to API collaborators.
type OrderDTO struct {
	ID             int64         `json:"id"`
	Items          []LineItemDTO `json:"items"`
	Subtotal       string        `json:"subtotal"`
	SubtotalCents  int64         `json:"subtotal_cents"`
	DiscountCode   *string       `json:"discount_code"`
	DiscountAmount string        `json:"discount_amount"`
	DiscountCents  int64         `json:"discount_cents"`
	Total          string        `json:"total"`
	TotalCents     int64         `json:"total_cents"`
	CreatedAt      time.Time     `json:"created_at"`
}

// LineItemDTO is one purchased line inside an order.
type LineItemDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	LineSubtotal string `json:"line_subtotal"`
}

func (s *service) ListOrders(ctx context.Context) ([]OrderDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	dtos := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, NewOrderDTO(&rows[i]))
	}
	return dtos, nil
}

func (s *service) GetOrder(ctx context.Context, id int64) (*OrderDTO, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id must be positive")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	dto := NewOrderDTO(order)
	return &dto, nil
}

// NewOrderDTO maps an order row into its API shape.
func NewOrderDTO(order *models.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItemDTO{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			UnitPrice:    formatCents(item.UnitPriceCents),
			Quantity:     item.Quantity,
			LineSubtotal: formatCents(item.LineSubtotalCents),
		})
	}
	return OrderDTO{
		ID:             order.ID,
		Items:          items,
		Subtotal:       formatCents(order.SubtotalCents),
		SubtotalCents:  order.SubtotalCents,
		DiscountCode:   order.DiscountCode,
		DiscountAmount: formatCents(order.DiscountAmountCents),
		DiscountCents:  order.DiscountAmountCents,
		Total:          formatCents(order.TotalCents),
		TotalCents:     order.TotalCents,
		CreatedAt:      order.CreatedAt,
	}
}

func formatCents(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}
