package models

import "time"

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

type Post struct {
	ID              uint       `json:"id" gorm:"primarykey"`
	AuthorID        *uint      `json:"author_id" gorm:"index"`
	Author          *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	Title           string     `json:"title" gorm:"not null"`
	Slug            string     `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content" gorm:"type:text"`
	Status          PostStatus `json:"status" gorm:"default:'draft';index"`
	PublishedAt     *time.Time `json:"published_at" gorm:"index"`
	Featured        bool       `json:"featured" gorm:"default:false"`
	FeaturedMediaID *uint      `json:"featured_media_id"`
	FeaturedMedia   *Media     `json:"featured_media,omitempty" gorm:"foreignKey:FeaturedMediaID;constraint:OnDelete:SET NULL"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	MetaImageURL    *string    `json:"meta_image_url"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Categories []Category `json:"categories,omitempty" gorm:"many2many:post_categories;"`
	Tags       []Tag      `json:"tags,omitempty" gorm:"many2many:post_tags;"`
}

// Visible reports whether the post should appear on public read
// endpoints. Visibility is computed, never stored: a published post with
// a future published_at stays hidden until its time arrives. The
// tolerance absorbs clock skew between the database and this process.
func (p *Post) Visible(now time.Time, tolerance time.Duration) bool {
	if p.Status != StatusPublished {
		return false
	}
	return p.PublishedAt == nil || !p.PublishedAt.After(now.Add(tolerance))
}

// Scheduled reports whether published_at lies in the future. The admin
// list filter uses this timestamp-only predicate regardless of status.
func (p *Post) Scheduled(now time.Time) bool {
	return p.PublishedAt != nil && p.PublishedAt.After(now)
}
