package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pricecart/pricecart/internal/model"
)

// ErrDuplicateItem is returned when a product is added to a list that
// already contains it.
var ErrDuplicateItem = errors.New("product already in list")

type ListStore struct {
	db *sql.DB
}

func NewListStore(db *sql.DB) *ListStore {
	return &ListStore{db: db}
}

func scanListItem(scanner interface{ Scan(...any) error }) (*model.ListItem, error) {
	var li model.ListItem
	err := scanner.Scan(
		&li.ID, &li.UserID, &li.ProductID, &li.ProductName, &li.ProductImage,
		&li.ProductSize, &li.Store, &li.Price, &li.Distance, &li.Quantity, &li.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &li, nil
}

const listItemCols = `id, user_id, product_id, product_name, product_image, product_size, store, price, distance, quantity, created_at`

// Add inserts a product snapshot into the user's list. Each product may
// appear at most once per user; re-adding returns ErrDuplicateItem.
func (s *ListStore) Add(item *model.ListItem) (*model.ListItem, error) {
	existing, err := s.GetByProductID(item.UserID, item.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateItem
	}

	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO list_items (user_id, product_id, product_name, product_image, product_size, store, price, distance, quantity)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.UserID, item.ProductID, item.ProductName, item.ProductImage,
		item.ProductSize, item.Store, item.Price, item.Distance, quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("insert list item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *ListStore) GetByID(id int64) (*model.ListItem, error) {
	row := s.db.QueryRow(`SELECT `+listItemCols+` FROM list_items WHERE id = ?`, id)
	li, err := scanListItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get list item: %w", err)
	}
	return li, nil
}

func (s *ListStore) GetByProductID(userID, productID int64) (*model.ListItem, error) {
	row := s.db.QueryRow(
		`SELECT `+listItemCols+` FROM list_items WHERE user_id = ? AND product_id = ?`,
		userID, productID,
	)
	li, err := scanListItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get list item by product: %w", err)
	}
	return li, nil
}

// ListByUser returns the user's list, oldest first.
func (s *ListStore) ListByUser(userID int64) ([]*model.ListItem, error) {
	rows, err := s.db.Query(
		`SELECT `+listItemCols+` FROM list_items WHERE user_id = ? ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*model.ListItem
	for rows.Next() {
		li, err := scanListItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list item: %w", err)
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

// UpdateQuantity sets the quantity on a list item. A quantity of zero or
// less removes the row. Returns the updated item, or nil when removed or
// not found.
func (s *ListStore) UpdateQuantity(userID, id int64, quantity int) (*model.ListItem, error) {
	if quantity <= 0 {
		if err := s.Delete(userID, id); err != nil {
			return nil, err
		}
		return nil, nil
	}
	_, err := s.db.Exec(
		`UPDATE list_items SET quantity = ? WHERE id = ? AND user_id = ?`,
		quantity, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("update list quantity: %w", err)
	}
	return s.GetByID(id)
}

func (s *ListStore) Delete(userID, id int64) error {
	_, err := s.db.Exec(`DELETE FROM list_items WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete list item: %w", err)
	}
	return nil
}

func (s *ListStore) Clear(userID int64) error {
	_, err := s.db.Exec(`DELETE FROM list_items WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("clear list: %w", err)
	}
	return nil
}

// Total returns the sum of price*quantity across the user's list.
func (s *ListStore) Total(userID int64) (float64, error) {
	var total sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT SUM(price * quantity) FROM list_items WHERE user_id = ?`,
		userID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("list total: %w", err)
	}
	return total.Float64, nil
}
