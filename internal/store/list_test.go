package store

import (
	"errors"
	"math"
	"testing"

	"github.com/pricecart/pricecart/internal/database"
	"github.com/pricecart/pricecart/internal/model"
)

func setupListTestDB(t *testing.T) (*ListStore, int64) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	us := NewUserStore(db)
	u, err := us.Create("Sarah", "+1", "9895069519", "password123")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return NewListStore(db), u.ID
}

func apples(userID int64) *model.ListItem {
	return &model.ListItem{
		UserID:       userID,
		ProductID:    1,
		ProductName:  "Fresh Red Apples",
		ProductImage: "🍎",
		ProductSize:  "2 lb",
		Store:        "Costco",
		Price:        2.74,
		Distance:     1.4,
		Quantity:     1,
	}
}

func TestListAdd(t *testing.T) {
	ls, userID := setupListTestDB(t)

	li, err := ls.Add(apples(userID))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if li.ID == 0 {
		t.Error("expected assigned id")
	}
	if li.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", li.Quantity)
	}
	if li.Store != "Costco" || li.Price != 2.74 {
		t.Errorf("snapshot = %+v", li)
	}
}

func TestListAddDuplicate(t *testing.T) {
	ls, userID := setupListTestDB(t)

	if _, err := ls.Add(apples(userID)); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err := ls.Add(apples(userID))
	if !errors.Is(err, ErrDuplicateItem) {
		t.Errorf("err = %v, want ErrDuplicateItem", err)
	}
}

func TestListAddDefaultsQuantity(t *testing.T) {
	ls, userID := setupListTestDB(t)

	item := apples(userID)
	item.Quantity = 0
	li, err := ls.Add(item)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if li.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", li.Quantity)
	}
}

func TestListUpdateQuantity(t *testing.T) {
	ls, userID := setupListTestDB(t)

	li, _ := ls.Add(apples(userID))
	updated, err := ls.UpdateQuantity(userID, li.ID, 4)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if updated.Quantity != 4 {
		t.Errorf("quantity = %d, want 4", updated.Quantity)
	}
}

func TestListUpdateQuantityZeroRemoves(t *testing.T) {
	ls, userID := setupListTestDB(t)

	li, _ := ls.Add(apples(userID))
	removed, err := ls.UpdateQuantity(userID, li.ID, 0)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if removed != nil {
		t.Errorf("expected nil after removal, got %+v", removed)
	}

	items, _ := ls.ListByUser(userID)
	if len(items) != 0 {
		t.Errorf("list has %d items, want 0", len(items))
	}
}

func TestListTotal(t *testing.T) {
	ls, userID := setupListTestDB(t)

	a := apples(userID)
	a.Quantity = 2
	if _, err := ls.Add(a); err != nil {
		t.Fatalf("add: %v", err)
	}

	b := &model.ListItem{
		UserID: userID, ProductID: 5, ProductName: "Organic Whole Milk",
		Store: "Costco", Price: 2.47, Quantity: 3,
	}
	if _, err := ls.Add(b); err != nil {
		t.Fatalf("add: %v", err)
	}

	total, err := ls.Total(userID)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	want := 2*2.74 + 3*2.47
	if math.Abs(total-want) > 1e-9 {
		t.Errorf("total = %v, want %v", total, want)
	}
}

func TestListTotalEmpty(t *testing.T) {
	ls, userID := setupListTestDB(t)

	total, err := ls.Total(userID)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 0 {
		t.Errorf("total = %v, want 0", total)
	}
}

func TestListDeleteScopedToOwner(t *testing.T) {
	ls, userID := setupListTestDB(t)

	li, _ := ls.Add(apples(userID))

	// Another user cannot delete it.
	if err := ls.Delete(userID+1, li.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := ls.GetByID(li.ID); got == nil {
		t.Fatal("item deleted by non-owner")
	}

	if err := ls.Delete(userID, li.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := ls.GetByID(li.ID); got != nil {
		t.Error("item survived owner delete")
	}
}

func TestListClear(t *testing.T) {
	ls, userID := setupListTestDB(t)

	ls.Add(apples(userID))
	ls.Add(&model.ListItem{UserID: userID, ProductID: 2, ProductName: "Organic Vegetables Mix", Store: "Costco", Price: 3.84, Quantity: 1})

	if err := ls.Clear(userID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	items, _ := ls.ListByUser(userID)
	if len(items) != 0 {
		t.Errorf("list has %d items after clear", len(items))
	}
}
