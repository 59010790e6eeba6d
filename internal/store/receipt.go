package store

import (
	"database/sql"
	"fmt"

	"github.com/pricecart/pricecart/internal/model"
)

type ReceiptStore struct {
	db *sql.DB
}

func NewReceiptStore(db *sql.DB) *ReceiptStore {
	return &ReceiptStore{db: db}
}

func scanReceipt(scanner interface{ Scan(...any) error }) (*model.Receipt, error) {
	var r model.Receipt
	err := scanner.Scan(&r.ID, &r.UserID, &r.FileName, &r.FileSize, &r.FileType, &r.ArchiveKey, &r.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// receiptCols deliberately excludes file_data; blobs are only loaded by
// GetData for downloads.
const receiptCols = `id, user_id, file_name, file_size, file_type, archive_key, uploaded_at`

func (s *ReceiptStore) Create(userID int64, fileName, fileType string, data []byte, archiveKey string) (*model.Receipt, error) {
	result, err := s.db.Exec(
		`INSERT INTO receipts (user_id, file_name, file_size, file_type, file_data, archive_key)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		userID, fileName, int64(len(data)), fileType, data, archiveKey,
	)
	if err != nil {
		return nil, fmt.Errorf("insert receipt: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *ReceiptStore) GetByID(id int64) (*model.Receipt, error) {
	row := s.db.QueryRow(`SELECT `+receiptCols+` FROM receipts WHERE id = ?`, id)
	r, err := scanReceipt(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return r, nil
}

// GetData returns the receipt with its blob populated, scoped to the owner.
func (s *ReceiptStore) GetData(userID, id int64) (*model.Receipt, error) {
	row := s.db.QueryRow(
		`SELECT `+receiptCols+`, file_data FROM receipts WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	var r model.Receipt
	err := row.Scan(&r.ID, &r.UserID, &r.FileName, &r.FileSize, &r.FileType, &r.ArchiveKey, &r.UploadedAt, &r.FileData)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get receipt data: %w", err)
	}
	return &r, nil
}

// ListByUser returns the user's receipts, newest first, without blobs.
func (s *ReceiptStore) ListByUser(userID int64) ([]*model.Receipt, error) {
	rows, err := s.db.Query(
		`SELECT `+receiptCols+` FROM receipts WHERE user_id = ? ORDER BY uploaded_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*model.Receipt
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}

func (s *ReceiptStore) Delete(userID, id int64) error {
	_, err := s.db.Exec(`DELETE FROM receipts WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}
