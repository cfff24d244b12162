package models

type Category struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`
}

// PostCategory is the join row between posts and categories. The set of
// rows for a post is always replaced wholesale, never patched.
type PostCategory struct {
	PostID     uint `json:"post_id" gorm:"primaryKey"`
	CategoryID uint `json:"category_id" gorm:"primaryKey"`
}
