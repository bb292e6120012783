package controllers

import (
	"context"
	"io"

	cartsvc "github.com/angelmondragon/threadline-backend/internal/cart"
	"github.com/angelmondragon/threadline-backend/internal/catalog"
	checkoutsvc "github.com/angelmondragon/threadline-backend/internal/checkout"
	discountsvc "github.com/angelmondragon/threadline-backend/internal/discounts"
	ordersvc "github.com/angelmondragon/threadline-backend/internal/orders"
	statsvc "github.com/angelmondragon/threadline-backend/internal/stats"
	"github.com/angelmondragon/threadline-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/threadline-backend/pkg/errors"
	"github.com/angelmondragon/threadline-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

type stubCatalogService struct {
	products []catalog.ProductDTO
	err      error
}

func (s *stubCatalogService) ListProducts(context.Context) ([]catalog.ProductDTO, error) {
	return s.products, s.err
}

func (s *stubCatalogService) GetProduct(_ context.Context, id string) (*catalog.ProductDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

type stubCartService struct {
	view       *cartsvc.View
	err        error
	lastAction string
	lastID     string
	lastQty    int
}

func (s *stubCartService) AddItem(_ context.Context, productID string) (*cartsvc.View, error) {
	s.lastAction, s.lastID = "add", productID
	return s.view, s.err
}

func (s *stubCartService) RemoveItem(_ context.Context, productID string) (*cartsvc.View, error) {
	s.lastAction, s.lastID = "remove", productID
	return s.view, s.err
}

func (s *stubCartService) SetQuantity(_ context.Context, productID string, quantity int) (*cartsvc.View, error) {
	s.lastAction, s.lastID, s.lastQty = "set", productID, quantity
	return s.view, s.err
}

func (s *stubCartService) Clear(context.Context) (*cartsvc.View, error) {
	s.lastAction = "clear"
	return s.view, s.err
}

func (s *stubCartService) GetCart(context.Context) (*cartsvc.View, error) {
	s.lastAction = "get"
	return s.view, s.err
}

type stubDiscountService struct {
	validation *discountsvc.Validation
	err        error
	lastCode   string
}

func (s *stubDiscountService) Validate(_ context.Context, code string) (*discountsvc.Validation, error) {
	s.lastCode = code
	return s.validation, s.err
}

func (s *stubDiscountService) Issue(context.Context, int, *int64) (*models.DiscountCode, error) {
	return nil, s.err
}

func (s *stubDiscountService) ListCodes(context.Context) ([]discountsvc.CodeDTO, error) {
	return nil, s.err
}

type stubCheckoutService struct {
	result   *checkoutsvc.Result
	err      error
	lastCode string
	called   bool
}

func (s *stubCheckoutService) Execute(_ context.Context, discountCode string) (*checkoutsvc.Result, error) {
	s.called = true
	s.lastCode = discountCode
	return s.result, s.err
}

type stubStatsService struct {
	report   *statsvc.Report
	generate *statsvc.GenerateResult
	err      error
}

func (s *stubStatsService) GetReport(context.Context) (*statsvc.Report, error) {
	return s.report, s.err
}

func (s *stubStatsService) GenerateDiscountCode(context.Context) (*statsvc.GenerateResult, error) {
	return s.generate, s.err
}

type stubOrdersService struct {
	orders []ordersvc.OrderDTO
	err    error
}

func (s *stubOrdersService) ListOrders(context.Context) ([]ordersvc.OrderDTO, error) {
	return s.orders, s.err
}

func (s *stubOrdersService) GetOrder(context.Context, int64) (*ordersvc.OrderDTO, error) {
	return nil, s.err
}

// Interface conformance for the stubs above.
var (
	_ catalog.Service     = (*stubCatalogService)(nil)
	_ cartsvc.Service     = (*stubCartService)(nil)
	_ discountsvc.Service = (*stubDiscountService)(nil)
	_ checkoutsvc.Service = (*stubCheckoutService)(nil)
	_ statsvc.Service     = (*stubStatsService)(nil)
	_ ordersvc.Service    = (*stubOrdersService)(nil)
)
