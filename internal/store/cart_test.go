package store

import (
	"sync"
	"testing"

	"catering-service/internal/model"
)

func TestGetOrCreateCartReturnsSameCart(t *testing.T) {
	db := requireDB(t)
	userID := newTestUser(t, db, 1001)
	carts := NewCartStore(db)

	first, err := carts.GetOrCreateCart(userID)
	if err != nil {
		t.Fatalf("Failed to create cart: %v", err)
	}
	second, err := carts.GetOrCreateCart(userID)
	if err != nil {
		t.Fatalf("Failed to reselect cart: %v", err)
	}
	if first != second {
		t.Errorf("Expected one cart per user, got %d and %d", first, second)
	}
}

func TestChangeQuantityAccumulatesDeltas(t *testing.T) {
	db := requireDB(t)
	userID := newTestUser(t, db, 1002)
	carts := NewCartStore(db)
	product := seededProducts(t, db)[0]

	for _, delta := range []int{2, 3, -1} {
		if err := carts.ChangeQuantity(userID, product.ID, delta); err != nil {
			t.Fatalf("ChangeQuantity(%d) failed: %v", delta, err)
		}
	}

	qty, err := carts.Quantity(userID, product.ID)
	if err != nil {
		t.Fatalf("Failed to read quantity: %v", err)
	}
	if qty != 4 {
		t.Errorf("Expected quantity 4, got %d", qty)
	}
}

func TestQuantityDroppingToZeroDeletesRow(t *testing.T) {
	db := requireDB(t)
	userID := newTestUser(t, db, 1003)
	carts := NewCartStore(db)
	product := seededProducts(t, db)[0]

	if err := carts.ChangeQuantity(userID, product.ID, 1); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if err := carts.ChangeQuantity(userID, product.ID, -1); err != nil {
		t.Fatalf("Decrement failed: %v", err)
	}

	qty, err := carts.Quantity(userID, product.ID)
	if err != nil {
		t.Fatalf("Failed to read quantity: %v", err)
	}
	if qty != 0 {
		t.Errorf("Expected quantity 0, got %d", qty)
	}

	cartID, _ := carts.GetOrCreateCart(userID)
	var count int64
	db.Model(&model.CartItem{}).Where("cart_id = ?", cartID).Count(&count)
	if count != 0 {
		t.Errorf("Expected no cart item rows, got %d", count)
	}
}

func TestDecrementWithoutRowStoresNothing(t *testing.T) {
	db := requireDB(t)
	userID := newTestUser(t, db, 1004)
	carts := NewCartStore(db)
	product := seededProducts(t, db)[0]

	if err := carts.ChangeQuantity(userID, product.ID, -1); err != nil {
		t.Fatalf("Decrement from empty failed: %v", err)
	}

	qty, err := carts.Quantity(userID, product.ID)
	if err != nil {
		t.Fatalf("Failed to read quantity: %v", err)
	}
	if qty != 0 {
		t.Errorf("Expected quantity 0, got %d", qty)
	}

	cartID, _ := carts.GetOrCreateCart(userID)
	var count int64
	db.Model(&model.CartItem{}).Where("cart_id = ?", cartID).Count(&count)
	if count != 0 {
		t.Errorf("Expected no row for a negative running total, got %d rows", count)
	}
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	db := requireDB(t)
	userID := newTestUser(t, db, 1005)
	carts := NewCartStore(db)
	product := seededProducts(t, db)[0]

	if err := carts.AddToCart(userID, product.ID, 1); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	if err := carts.RemoveFromCart(userID, product.ID); err != nil {
		t.Fatalf("RemoveFromCart failed: %v", err)
	}

	items, err := carts.Items(userID)
	if err != nil {
		t.Fatalf("Failed to read items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected an empty cart, got %d items", len(items))
	}
}

func TestRemoveDeletesRegardlessOfQuantity(t *testing.T) {
	db := requireDB(t)
	userID := newTestUser(t, db, 1006)
	carts := NewCartStore(db)
	product := seededProducts(t, db)[0]

	if err := carts.AddToCart(userID, product.ID, 5); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	if err := carts.RemoveFromCart(userID, product.ID); err != nil {
		t.Fatalf("RemoveFromCart failed: %v", err)
	}

	qty, err := carts.Quantity(userID, product.ID)
	if err != nil {
		t.Fatalf("Failed to read quantity: %v", err)
	}
	if qty != 0 {
		t.Errorf("Expected quantity 0 after removal, got %d", qty)
	}
}

func TestTotalReflectsLivePrices(t *testing.T) {
	db := requireDB(t)
	userID := newTestUser(t, db, 1007)
	carts := NewCartStore(db)
	product := seededProducts(t, db)[0]

	if err := carts.AddToCart(userID, product.ID, 2); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}

	total, err := carts.Total(userID)
	if err != nil {
		t.Fatalf("Failed to compute total: %v", err)
	}
	if total != product.Price*2 {
		t.Errorf("Expected total %d, got %d", product.Price*2, total)
	}

	// A catalog price change must show up in the next total: nothing is
	// cached or snapshotted on the cart side.
	newPrice := product.Price + 100
	if err := db.Model(&model.Product{}).Where("id = ?", product.ID).Update("price", newPrice).Error; err != nil {
		t.Fatalf("Failed to change price: %v", err)
	}
	defer db.Model(&model.Product{}).Where("id = ?", product.ID).Update("price", product.Price)

	total, err = carts.Total(userID)
	if err != nil {
		t.Fatalf("Failed to recompute total: %v", err)
	}
	if total != newPrice*2 {
		t.Errorf("Expected live total %d, got %d", newPrice*2, total)
	}
}

func TestConcurrentIncrementsAreNotLost(t *testing.T) {
	db := requireDB(t)
	userID := newTestUser(t, db, 1008)
	carts := NewCartStore(db)
	product := seededProducts(t, db)[0]

	// The delta is applied atomically at the storage layer, so N concurrent
	// increments from quantity 0 must end at exactly N.
	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- carts.ChangeQuantity(userID, product.ID, 1)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Concurrent increment failed: %v", err)
		}
	}

	qty, err := carts.Quantity(userID, product.ID)
	if err != nil {
		t.Fatalf("Failed to read quantity: %v", err)
	}
	if qty != workers {
		t.Errorf("Lost update: expected quantity %d, got %d", workers, qty)
	}
}
