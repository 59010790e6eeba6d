package store

import (
	"database/sql"
	"fmt"

	"github.com/pricecart/pricecart/internal/model"
)

type MembershipStore struct {
	db *sql.DB
}

func NewMembershipStore(db *sql.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

func scanMembership(scanner interface{ Scan(...any) error }) (*model.Membership, error) {
	var m model.Membership
	err := scanner.Scan(
		&m.ID, &m.UserID, &m.Store, &m.MembershipNumber, &m.Email,
		&m.Phone, &m.CardNumber, &m.ExpiryDate, &m.CVV, &m.SavedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

const membershipCols = `id, user_id, store, membership_number, email, phone, card_number, expiry_date, cvv, saved_at`

// Save upserts the membership for (user, store); a second save for the
// same store replaces the first.
func (s *MembershipStore) Save(m *model.Membership) (*model.Membership, error) {
	_, err := s.db.Exec(
		`INSERT INTO memberships (user_id, store, membership_number, email, phone, card_number, expiry_date, cvv)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, store) DO UPDATE SET
		   membership_number = excluded.membership_number,
		   email = excluded.email,
		   phone = excluded.phone,
		   card_number = excluded.card_number,
		   expiry_date = excluded.expiry_date,
		   cvv = excluded.cvv,
		   saved_at = datetime('now')`,
		m.UserID, m.Store, m.MembershipNumber, m.Email, m.Phone, m.CardNumber, m.ExpiryDate, m.CVV,
	)
	if err != nil {
		return nil, fmt.Errorf("save membership: %w", err)
	}

	// LastInsertId is unreliable on the upsert-update path; fetch by key.
	return s.GetByStore(m.UserID, m.Store)
}

func (s *MembershipStore) GetByStore(userID int64, storeName string) (*model.Membership, error) {
	row := s.db.QueryRow(
		`SELECT `+membershipCols+` FROM memberships WHERE user_id = ? AND store = ?`,
		userID, storeName,
	)
	m, err := scanMembership(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return m, nil
}

func (s *MembershipStore) ListByUser(userID int64) ([]*model.Membership, error) {
	rows, err := s.db.Query(
		`SELECT `+membershipCols+` FROM memberships WHERE user_id = ? ORDER BY saved_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*model.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

func (s *MembershipStore) Delete(userID, id int64) error {
	_, err := s.db.Exec(`DELETE FROM memberships WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	return nil
}
