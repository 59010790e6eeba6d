package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	CountryCode  string    `json:"country_code"`
	MobileNumber string    `json:"mobile_number"`
	Mobile       string    `json:"mobile"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
