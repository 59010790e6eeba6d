package store

import (
	"testing"

	"github.com/pricecart/pricecart/internal/database"
)

func setupUserTestDB(t *testing.T) *UserStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewUserStore(db)
}

func TestUserCreateHashesPassword(t *testing.T) {
	us := setupUserTestDB(t)

	u, err := us.Create("Sarah", "+1", "9895069519", "password123")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.PasswordHash == "password123" {
		t.Error("password stored in plaintext")
	}
	if u.PasswordHash == "" {
		t.Error("expected non-empty password hash")
	}
	if u.Mobile != "+19895069519" {
		t.Errorf("mobile = %q, want +19895069519", u.Mobile)
	}
}

func TestUserCreateDuplicateMobile(t *testing.T) {
	us := setupUserTestDB(t)

	if _, err := us.Create("Sarah", "+1", "9895069519", "password123"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := us.Create("Other Sarah", "+1", "9895069519", "different"); err == nil {
		t.Error("expected error for duplicate mobile number")
	}
}

func TestUserAuthenticate(t *testing.T) {
	us := setupUserTestDB(t)

	created, err := us.Create("Lance", "+1", "1234567890", "user123")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	tests := []struct {
		name         string
		countryCode  string
		mobileNumber string
		password     string
		wantUser     bool
	}{
		{"valid credentials", "+1", "1234567890", "user123", true},
		{"wrong password", "+1", "1234567890", "wrong", false},
		{"unknown number", "+1", "0000000000", "user123", false},
		{"wrong country code", "+44", "1234567890", "user123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := us.Authenticate(tt.countryCode, tt.mobileNumber, tt.password)
			if err != nil {
				t.Fatalf("authenticate: %v", err)
			}
			if tt.wantUser && (u == nil || u.ID != created.ID) {
				t.Errorf("expected user %d, got %+v", created.ID, u)
			}
			if !tt.wantUser && u != nil {
				t.Errorf("expected nil user, got %+v", u)
			}
		})
	}
}

func TestUserGetByIDNotFound(t *testing.T) {
	us := setupUserTestDB(t)

	u, err := us.GetByID(999)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if u != nil {
		t.Errorf("expected nil, got %+v", u)
	}
}

func TestUserUpdateProfile(t *testing.T) {
	us := setupUserTestDB(t)

	u, _ := us.Create("Lance", "+1", "1234567890", "user123")
	updated, err := us.UpdateProfile(u.ID, "Lance Updated", "+1", "5550001111")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.FullName != "Lance Updated" {
		t.Errorf("full name = %q", updated.FullName)
	}
	if updated.Mobile != "+15550001111" {
		t.Errorf("mobile = %q", updated.Mobile)
	}
}

func TestUserUpdatePassword(t *testing.T) {
	us := setupUserTestDB(t)

	u, _ := us.Create("Lance", "+1", "1234567890", "user123")
	if err := us.UpdatePassword(u.ID, "newsecret"); err != nil {
		t.Fatalf("update password: %v", err)
	}
	if got, _ := us.Authenticate("+1", "1234567890", "newsecret"); got == nil {
		t.Error("new password should authenticate")
	}
	if got, _ := us.Authenticate("+1", "1234567890", "user123"); got != nil {
		t.Error("old password should not authenticate")
	}
}

func TestEnsureDemoUsers(t *testing.T) {
	us := setupUserTestDB(t)

	if err := us.EnsureDemoUsers(); err != nil {
		t.Fatalf("ensure demo users: %v", err)
	}
	n, err := us.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 5 {
		t.Errorf("seeded %d users, want 5", n)
	}

	// Seeded accounts authenticate with their demo passwords.
	u, err := us.Authenticate("+1", "8102931752", "admin")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u == nil {
		t.Fatal("admin demo account did not authenticate")
	}
	if u.FullName != "BHARATHKUMAR(ADMIN)" {
		t.Errorf("full name = %q", u.FullName)
	}

	// Idempotent: a second call seeds nothing.
	if err := us.EnsureDemoUsers(); err != nil {
		t.Fatalf("ensure demo users again: %v", err)
	}
	n, _ = us.Count()
	if n != 5 {
		t.Errorf("count after second seed = %d, want 5", n)
	}
}

func TestDemoUserTrailingSpacePreserved(t *testing.T) {
	us := setupUserTestDB(t)
	if err := us.EnsureDemoUsers(); err != nil {
		t.Fatalf("ensure demo users: %v", err)
	}

	u, err := us.Authenticate("+1", "9898989898", "test123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u == nil {
		t.Fatal("demo account did not authenticate")
	}
	if u.FullName != "Arpitha " {
		t.Errorf("full name = %q, want trailing space preserved", u.FullName)
	}
}
