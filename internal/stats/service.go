package stats

import (
	"context"
	"fmt"

	"github.com/angelmondragon/threadline-backend/internal/discounts"
	"github.com/angelmondragon/threadline-backend/internal/orders"
	"github.com/angelmondragon/threadline-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/threadline-backend/pkg/errors"
	"github.com/angelmondragon/threadline-backend/pkg/metrics"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Report aggregates the order journal and discount registry for the admin
// dashboard. Everything is derived on demand; nothing here is cached.
type Report struct {
	TotalOrders              int64               `json:"total_orders"`
	TotalItemsPurchased      int64               `json:"total_items_purchased"`
	TotalRevenue             string              `json:"total_revenue"`
	TotalRevenueCents        int64               `json:"total_revenue_cents"`
	TotalDiscountsGiven      string              `json:"total_discounts_given"`
	TotalDiscountsGivenCents int64               `json:"total_discounts_given_cents"`
	DiscountCodes            []discounts.CodeDTO `json:"discount_codes"`
}

// GenerateResult pairs a minted code with the operator-facing message.
type GenerateResult struct {
	Code    discounts.CodeDTO `json:"code"`
	Message string            `json:"message"`
}

// Service exposes the admin reporting surface.
type Service interface {
	GetReport(ctx context.Context) (*Report, error)
	GenerateDiscountCode(ctx context.Context) (*GenerateResult, error)
}

// Deps wires the reporter to the journal and registry.
type Deps struct {
	Orders    orders.Repository
	Discounts discounts.Repository
	Tx        txRunner
	Store     config.StoreConfig
	Metrics   *metrics.StoreMetrics
}

type service struct {
	orders    orders.Repository
	discounts discounts.Repository
	tx        txRunner
	store     config.StoreConfig
	metrics   *metrics.StoreMetrics
}

// NewService builds a stats service from its dependencies.
func NewService(deps Deps) (Service, error) {
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
		orders:    deps.Orders,
		discounts: deps.Discounts,
		tx:        deps.Tx,
		store:     deps.Store,
		metrics:   deps.Metrics,
	}, nil
}

// GetReport walks the journal and registry and sums them up.
func (s *service) GetReport(ctx context.Context) (*Report, error) {
	rows, err := s.orders.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	report := &Report{TotalOrders: int64(len(rows))}
	for i := range rows {
		order := &rows[i]
		report.TotalRevenueCents += order.TotalCents
		report.TotalDiscountsGivenCents += order.DiscountAmountCents
		for _, item := range order.Items {
			report.TotalItemsPurchased += int64(item.Quantity)
		}
	}
	report.TotalRevenue = formatCents(report.TotalRevenueCents)
	report.TotalDiscountsGiven = formatCents(report.TotalDiscountsGivenCents)

	codes, err := s.discounts.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list discount codes")
	}
	report.DiscountCodes = make([]discounts.CodeDTO, 0, len(codes))
	for i := range codes {
		report.DiscountCodes = append(report.DiscountCodes, discounts.NewCodeDTO(&codes[i]))
	}

	return report, nil
}

// GenerateDiscountCode mints a code on demand. It is only allowed when the
// order count sits exactly on a multiple of the configured interval; the
// check and the mint share one transaction so a concurrent checkout cannot
// slip between them.
func (s *service) GenerateDiscountCode(ctx context.Context) (*GenerateResult, error) {
	var minted *discounts.CodeDTO

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		count, err := s.orders.WithTx(tx).Count(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count orders")
		}

		interval := int64(s.store.NthOrderForDiscount)
		if count == 0 || count%interval != 0 {
			needed := interval - count%interval
			return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf(
				"Cannot generate code. %d more order(s) needed until next discount eligibility.", needed))
		}

		record, err := discounts.IssueCode(ctx, s.discounts.WithTx(tx), s.store.DiscountPercentage, nil)
		if err != nil {
			return err
		}
		dto := discounts.NewCodeDTO(record)
		minted = &dto
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncCodeIssued("admin")
	return &GenerateResult{
		Code: *minted,
		Message: fmt.Sprintf("New discount code generated: %s (%d%% off)",
			minted.Code, minted.Percentage),
	}, nil
}

func formatCents(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}
