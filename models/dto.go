package models

import (
	"encoding/json"
	"time"
)

type RegisterRequest struct {
	Name     string   `json:"name" binding:"required,min=2,max=255"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty" binding:"omitempty,oneof=admin author editor"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// NullableTime distinguishes an absent field, an explicit null, and a
// timestamp in partial-update bodies. published_at needs all three:
// absent means keep, null means clear, a value means schedule or
// backdate.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func (n *NullableTime) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

type CreatePostRequest struct {
	Title           string     `json:"title" binding:"required,min=3"`
	Slug            string     `json:"slug" binding:"required,slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	Status          PostStatus `json:"status" binding:"omitempty,oneof=draft published archived"`
	PublishedAt     *time.Time `json:"published_at"`
	Featured        bool       `json:"featured"`
	FeaturedMediaID *uint      `json:"featured_media_id"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	MetaImageURL    *string    `json:"meta_image_url"`
}

type UpdatePostRequest struct {
	Title           *string      `json:"title" binding:"omitempty,min=3"`
	Slug            *string      `json:"slug" binding:"omitempty,slug"`
	Excerpt         *string      `json:"excerpt"`
	Content         *string      `json:"content"`
	Status          *PostStatus  `json:"status" binding:"omitempty,oneof=draft published archived"`
	PublishedAt     NullableTime `json:"published_at"`
	Featured        *bool        `json:"featured"`
	FeaturedMediaID *uint        `json:"featured_media_id"`
	MetaTitle       *string      `json:"meta_title"`
	MetaDescription *string      `json:"meta_description"`
	MetaImageURL    *string      `json:"meta_image_url"`
}

type SetCategoriesRequest struct {
	Categories []uint `json:"categories"`
}

type SetTagsRequest struct {
	Tags []uint `json:"tags"`
}

type CreateTaxonomyRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
	Slug string `json:"slug" binding:"required,slug"`
}

type UpdateTaxonomyRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=255"`
	Slug *string `json:"slug" binding:"omitempty,slug"`
}

type PostListParams struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=12"`
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Featured bool   `form:"featured"`
}

type AdminPostListParams struct {
	Page      int  `form:"page,default=1"`
	Limit     int  `form:"limit,default=20"`
	Scheduled bool `form:"scheduled"`
}
