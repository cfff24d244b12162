package models

import "time"

type Media struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	URL        string    `json:"url" gorm:"not null"`
	MimeType   string    `json:"mime_type"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	AltText    string    `json:"alt_text"`
	UploadedBy *uint     `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}
