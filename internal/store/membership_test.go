package store

import (
	"testing"

	"github.com/pricecart/pricecart/internal/database"
	"github.com/pricecart/pricecart/internal/model"
)

func setupMembershipTestDB(t *testing.T) (*MembershipStore, int64) {
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
	return NewMembershipStore(db), u.ID
}

func TestMembershipSave(t *testing.T) {
	ms, userID := setupMembershipTestDB(t)

	m, err := ms.Save(&model.Membership{
		UserID:           userID,
		Store:            "Costco",
		MembershipNumber: "111879302421",
		Email:            "sarah@example.com",
		Phone:            "9895069519",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if m.ID == 0 {
		t.Error("expected assigned id")
	}
	if m.MembershipNumber != "111879302421" {
		t.Errorf("membership number = %q", m.MembershipNumber)
	}
}

func TestMembershipSaveReplacesPerStore(t *testing.T) {
	ms, userID := setupMembershipTestDB(t)

	first, _ := ms.Save(&model.Membership{UserID: userID, Store: "Kroger", MembershipNumber: "one"})
	second, err := ms.Save(&model.Membership{UserID: userID, Store: "Kroger", MembershipNumber: "two"})
	if err != nil {
		t.Fatalf("save again: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a new row: %d then %d", first.ID, second.ID)
	}
	if second.MembershipNumber != "two" {
		t.Errorf("membership number = %q, want replaced value", second.MembershipNumber)
	}

	memberships, _ := ms.ListByUser(userID)
	if len(memberships) != 1 {
		t.Errorf("got %d memberships, want 1", len(memberships))
	}
}

func TestMembershipStoreSpecificFields(t *testing.T) {
	ms, userID := setupMembershipTestDB(t)

	m, err := ms.Save(&model.Membership{
		UserID:     userID,
		Store:      "Meijer's",
		Email:      "sarah@example.com",
		Phone:      "9895069519",
		CardNumber: "4111111111111111",
		ExpiryDate: "12/27",
		CVV:        "123",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if m.CardNumber != "4111111111111111" || m.ExpiryDate != "12/27" || m.CVV != "123" {
		t.Errorf("card fields not persisted: %+v", m)
	}
}

func TestMembershipDistinctStoresCoexist(t *testing.T) {
	ms, userID := setupMembershipTestDB(t)

	ms.Save(&model.Membership{UserID: userID, Store: "Costco", MembershipNumber: "a"})
	ms.Save(&model.Membership{UserID: userID, Store: "Walmart", Email: "sarah@example.com"})

	memberships, err := ms.ListByUser(userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(memberships) != 2 {
		t.Errorf("got %d memberships, want 2", len(memberships))
	}
}

func TestMembershipDelete(t *testing.T) {
	ms, userID := setupMembershipTestDB(t)

	m, _ := ms.Save(&model.Membership{UserID: userID, Store: "Costco", MembershipNumber: "a"})

	// Non-owner delete is a no-op.
	if err := ms.Delete(userID+1, m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := ms.GetByStore(userID, "Costco"); got == nil {
		t.Fatal("membership deleted by non-owner")
	}

	if err := ms.Delete(userID, m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := ms.GetByStore(userID, "Costco"); got != nil {
		t.Error("membership survived delete")
	}
}
