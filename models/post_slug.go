package models

import "time"

// PostSlug records a retired slug so old links keep resolving after a
// rename. Rows are written once during a rename and removed only when
// the post itself is deleted or reclaims the slug.
type PostSlug struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	PostID    uint      `json:"post_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
