package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	checkoutsvc "github.com/angelmondragon/threadline-backend/internal/checkout"
	ordersvc "github.com/angelmondragon/threadline-backend/internal/orders"
	pkgerrors "github.com/angelmondragon/threadline-backend/pkg/errors"
	"github.com/angelmondragon/threadline-backend/pkg/types"
)

func TestCheckoutWithoutBody(t *testing.T) {
	stub := &stubCheckoutService{result: &checkoutsvc.Result{
		Order:   ordersvc.OrderDTO{ID: 1, Total: "146.00"},
		Message: "Order placed successfully!",
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	rec := httptest.NewRecorder()
	Checkout(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !stub.called || stub.lastCode != "" {
		t.Fatalf("expected execute with empty code, called=%v code=%q", stub.called, stub.lastCode)
	}

	var body struct {
		Data checkoutsvc.Result `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Order.ID != 1 || body.Data.Message != "Order placed successfully!" {
		t.Fatalf("unexpected payload %+v", body.Data)
	}
}

func TestCheckoutPassesDiscountCode(t *testing.T) {
	stub := &stubCheckoutService{result: &checkoutsvc.Result{Order: ordersvc.OrderDTO{ID: 2}}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{"discount_code":"SAVEABC123"}`))
	rec := httptest.NewRecorder()
	Checkout(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.lastCode != "SAVEABC123" {
		t.Fatalf("expected code forwarded, got %q", stub.lastCode)
	}
}

func TestCheckoutEmptyCartMapsTo400(t *testing.T) {
	stub := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeValidation, checkoutsvc.MsgEmptyCart)}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	rec := httptest.NewRecorder()
	Checkout(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Message != checkoutsvc.MsgEmptyCart {
		t.Fatalf("unexpected message %q", body.Error.Message)
	}
}

func TestCheckoutInvalidCodeMapsTo422(t *testing.T) {
	stub := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "Invalid or already used discount code.")}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{"discount_code":"NOPE"}`))
	rec := httptest.NewRecorder()
	Checkout(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
