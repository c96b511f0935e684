package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := mustUser(t, db, "shopper@example.com")

	order, err := svc.Checkout(user.ID)
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
	if order != nil {
		t.Fatalf("expected no order, got %+v", order)
	}
	if n := orderCount(t, db, user.ID); n != 0 {
		t.Fatalf("expected 0 orders, got %d", n)
	}
}

func TestCheckout(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	user := mustUser(t, db, "shopper@example.com")
	apples := mustProduct(t, db, "Apples", "2.50")
	bread := mustProduct(t, db, "Bread", "1.20")

	for i := 0; i < 3; i++ {
		if _, err := cartSvc.Add(user.ID, apples.ID); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := cartSvc.Add(user.ID, bread.ID); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	view, err := cartSvc.View(user.ID)
	if err != nil {
		t.Fatalf("view: %v", err)
	}

	order, err := orderSvc.Checkout(user.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	t.Run("order total equals the pre-checkout cart total", func(t *testing.T) {
		if !order.TotalAmount.Equal(view.Total) {
			t.Fatalf("order total %s != cart total %s", order.TotalAmount, view.Total)
		}
		if !order.TotalAmount.Equal(decimal.RequireFromString("9.90")) {
			t.Fatalf("expected 9.90, got %s", order.TotalAmount)
		}
	})

	t.Run("order is marked paid at creation", func(t *testing.T) {
		if !order.IsPaid {
			t.Fatal("expected IsPaid")
		}
	})

	t.Run("cart is empty afterwards", func(t *testing.T) {
		if n := cartCount(t, db, user.ID); n != 0 {
			t.Fatalf("expected empty cart, got %d rows", n)
		}
	})

	t.Run("exactly one order exists", func(t *testing.T) {
		if n := orderCount(t, db, user.ID); n != 1 {
			t.Fatalf("expected 1 order, got %d", n)
		}
	})

	t.Run("a second checkout takes the empty-cart path", func(t *testing.T) {
		if _, err := orderSvc.Checkout(user.ID); !errors.Is(err, ErrCartEmpty) {
			t.Fatalf("expected ErrCartEmpty, got %v", err)
		}
		if n := orderCount(t, db, user.ID); n != 1 {
			t.Fatalf("expected still 1 order, got %d", n)
		}
	})
}

func TestConcurrentCheckoutCreatesOneOrder(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	user := mustUser(t, db, "shopper@example.com")
	apples := mustProduct(t, db, "Apples", "2.50")

	if _, err := cartSvc.Add(user.ID, apples.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	var mu sync.Mutex
	var results []error

	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			_, err := orderSvc.Checkout(user.ID)
			mu.Lock()
			results = append(results, err)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}

	var won, empty int
	for _, err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrCartEmpty):
			empty++
		default:
			t.Fatalf("unexpected checkout error: %v", err)
		}
	}
	if won != 1 || empty != 1 {
		t.Fatalf("expected one winner and one empty-cart outcome, got won=%d empty=%d", won, empty)
	}
	if n := orderCount(t, db, user.ID); n != 1 {
		t.Fatalf("expected exactly 1 order, got %d", n)
	}
	if n := cartCount(t, db, user.ID); n != 0 {
		t.Fatalf("expected empty cart, got %d rows", n)
	}
}

func TestOrderHistoryIsScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	orderSvc := newOrderService(db)
	alice := mustUser(t, db, "alice@example.com")
	bob := mustUser(t, db, "bob@example.com")
	milk := mustProduct(t, db, "Milk", "0.99")

	if _, err := cartSvc.Add(alice.ID, milk.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	order, err := orderSvc.Checkout(alice.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if _, err := orderSvc.DetailForUser(bob.ID, order.ID); err == nil {
		t.Fatal("bob can read alice's order")
	}

	summaries, err := orderSvc.ListForUser(bob.ID, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("bob sees %d orders", len(summaries))
	}
}
