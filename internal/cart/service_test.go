package cart

import (
	"context"
	"testing"

	"github.com/angelmondragon/threadline-backend/internal/catalog"
	"github.com/angelmondragon/threadline-backend/pkg/config"
	"github.com/angelmondragon/threadline-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/threadline-backend/pkg/errors"
	"github.com/angelmondragon/threadline-backend/pkg/migrate"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{DSN: "file::memory:"}, nil)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if err := migrate.Run(context.Background(), client, nil); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	catalogRepo := catalog.NewRepository(client.DB())
	if err := catalogRepo.Seed(context.Background(), catalog.SeedProducts()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	svc, err := NewService(NewRepository(client.DB()), client, catalogRepo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.AddItem(ctx, "1")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 1 {
		t.Fatalf("unexpected view after first add: %+v", view)
	}

	view, err = svc.AddItem(ctx, "1")
	if err != nil {
		t.Fatalf("AddItem again: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("expected a single line per product, got %d", len(view.Lines))
	}
	if view.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", view.Lines[0].Quantity)
	}
	if view.SubtotalCents != 9600 {
		t.Fatalf("expected subtotal 9600, got %d", view.SubtotalCents)
	}
	if view.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", view.ItemCount)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddItem(context.Background(), "999")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubtotalMatchesLineArithmetic(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustAdd := func(id string) {
		t.Helper()
		if _, err := svc.AddItem(ctx, id); err != nil {
			t.Fatalf("AddItem(%s): %v", id, err)
		}
	}
	mustAdd("1") // 4800
	mustAdd("2") // 9800
	mustAdd("2")
	mustAdd("4") // 4500

	view, err := svc.GetCart(ctx)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}

	var expected int64
	seen := map[string]bool{}
	for _, line := range view.Lines {
		if seen[line.Product.ID] {
			t.Fatalf("duplicate line for product %s", line.Product.ID)
		}
		seen[line.Product.ID] = true
		expected += line.Product.PriceCents * int64(line.Quantity)
	}
	if view.SubtotalCents != expected {
		t.Fatalf("subtotal %d does not match line sum %d", view.SubtotalCents, expected)
	}
	if view.SubtotalCents != 4800+2*9800+4500 {
		t.Fatalf("unexpected subtotal %d", view.SubtotalCents)
	}
	if view.ItemCount != 4 {
		t.Fatalf("expected 4 items, got %d", view.ItemCount)
	}
}

func TestSetQuantity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "3"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	view, err := svc.SetQuantity(ctx, "3", 5)
	if err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if view.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity set to exactly 5, got %d", view.Lines[0].Quantity)
	}
	if view.SubtotalCents != 5*12800 {
		t.Fatalf("unexpected subtotal %d", view.SubtotalCents)
	}

	// Zero and negative quantities behave like removal.
	view, err = svc.SetQuantity(ctx, "3", 0)
	if err != nil {
		t.Fatalf("SetQuantity(0): %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(view.Lines))
	}

	// Setting a product that is not in the cart is a no-op.
	view, err = svc.SetQuantity(ctx, "5", 2)
	if err != nil {
		t.Fatalf("SetQuantity absent: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected no-op for absent product, got %+v", view.Lines)
	}
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "1"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	view, err := svc.RemoveItem(ctx, "6")
	if err != nil {
		t.Fatalf("RemoveItem absent: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("expected existing line untouched, got %d lines", len(view.Lines))
	}

	view, err = svc.RemoveItem(ctx, "1")
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(view.Lines))
	}
}

func TestClear(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "1"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.AddItem(ctx, "2"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	view, err := svc.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(view.Lines) != 0 || view.SubtotalCents != 0 || view.ItemCount != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}
