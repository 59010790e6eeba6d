package model

import "time"

type ListItem struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	ProductSize  string    `json:"product_size"`
	Store        string    `json:"store"`
	Price        float64   `json:"price"`
	Distance     float64   `json:"distance"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
}
