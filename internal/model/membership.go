package model

import "time"

// Membership is a saved store loyalty/membership record. At most one exists
// per (user, store) pair; saving again replaces the previous record.
type Membership struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Store            string    `json:"store"`
	MembershipNumber string    `json:"membership_number,omitempty"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	CardNumber       string    `json:"card_number,omitempty"`
	ExpiryDate       string    `json:"expiry_date,omitempty"`
	CVV              string    `json:"cvv,omitempty"`
	SavedAt          time.Time `json:"saved_at"`
}
