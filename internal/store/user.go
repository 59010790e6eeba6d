package store

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pricecart/pricecart/internal/model"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(scanner interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := scanner.Scan(&u.ID, &u.FullName, &u.CountryCode, &u.MobileNumber, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Mobile = u.CountryCode + u.MobileNumber
	return &u, nil
}

const userCols = `id, full_name, country_code, mobile_number, password_hash, created_at, updated_at`

// Create registers a user with a bcrypt-hashed password. Plaintext
// passwords are never stored.
func (s *UserStore) Create(fullName, countryCode, mobileNumber, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO users (full_name, country_code, mobile_number, password_hash) VALUES (?, ?, ?, ?)`,
		fullName, countryCode, mobileNumber, string(hash),
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *UserStore) GetByID(id int64) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByMobile(countryCode, mobileNumber string) (*model.User, error) {
	row := s.db.QueryRow(
		`SELECT `+userCols+` FROM users WHERE country_code = ? AND mobile_number = ?`,
		countryCode, mobileNumber,
	)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by mobile: %w", err)
	}
	return u, nil
}

// Authenticate returns the user when the mobile number and password match,
// or nil when either is wrong. The two failure modes are indistinguishable
// to callers.
func (s *UserStore) Authenticate(countryCode, mobileNumber, password string) (*model.User, error) {
	u, err := s.GetByMobile(countryCode, mobileNumber)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return u, nil
}

func (s *UserStore) UpdateProfile(id int64, fullName, countryCode, mobileNumber string) (*model.User, error) {
	_, err := s.db.Exec(
		`UPDATE users SET full_name = ?, country_code = ?, mobile_number = ?, updated_at = datetime('now') WHERE id = ?`,
		fullName, countryCode, mobileNumber, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.GetByID(id)
}

// UpdatePassword replaces the user's credential with a fresh bcrypt hash.
func (s *UserStore) UpdatePassword(id int64, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.db.Exec(
		`UPDATE users SET password_hash = ?, updated_at = datetime('now') WHERE id = ?`,
		string(hash), id,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *UserStore) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// demoUsers seeds a fresh database so the demo is usable out of the box.
// Note the trailing space in "Arpitha " is intentional; it matches the
// seeded account name users expect to see.
var demoUsers = []struct {
	fullName     string
	countryCode  string
	mobileNumber string
	password     string
}{
	{"BHARATHKUMAR(ADMIN)", "+1", "8102931752", "admin"},
	{"Sarah", "+1", "9895069519", "password123"},
	{"Lance", "+1", "1234567890", "user123"},
	{"Arpitha ", "+1", "9898989898", "test123"},
	{"Charlette Tang", "+1", "2424242424", "demo123"},
}

// EnsureDemoUsers creates the seeded demo accounts if the users table is
// empty. Passwords are hashed like any other account's.
func (s *UserStore) EnsureDemoUsers() error {
	n, err := s.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, d := range demoUsers {
		if _, err := s.Create(d.fullName, d.countryCode, d.mobileNumber, d.password); err != nil {
			return fmt.Errorf("seed demo user %s: %w", d.mobileNumber, err)
		}
	}
	return nil
}
