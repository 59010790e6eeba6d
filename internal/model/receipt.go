package model

import "time"

type Receipt struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	FileType   string    `json:"file_type"`
	FileData   []byte    `json:"-"`
	ArchiveKey string    `json:"-"`
	UploadedAt time.Time `json:"uploaded_at"`
}
