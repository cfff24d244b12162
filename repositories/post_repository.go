package repositories

import (
	"time"

	"faithstories/config"
	"faithstories/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetVisibleBySlug(slug string, now time.Time) (*models.Post, error)
	GetPublishedByID(id uint) (*models.Post, error)
	GetHistoricalSlug(slug string) (*models.PostSlug, error)
	ListVisible(params models.PostListParams, now time.Time) ([]models.Post, int64, error)
	ListAdmin(params models.AdminPostListParams, now time.Time) ([]models.Post, int64, error)
	ListFeatured(limit int) ([]models.Post, error)
	ListPublished(limit int) ([]models.Post, error)
	Update(id uint, updates map[string]interface{}) (int64, error)
	Rename(id uint, oldSlug string, updates map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	ReplaceCategories(postID uint, categoryIDs []uint) error
	ReplaceTags(postID uint, tagIDs []uint) error
	CategoriesOf(postID uint) ([]models.Category, error)
	TagsOf(postID uint) ([]models.Tag, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// visibleAt is the public visibility predicate: published status and a
// published_at that is null or already reached. The cutoff is computed
// in Go and passed as a bind parameter so the same query runs under
// Postgres and the sqlite test driver.
func visibleAt(now time.Time) func(*gorm.DB) *gorm.DB {
	cutoff := now.Add(config.PublishSkewTolerance)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.status = ?", models.StatusPublished).
			Where("posts.published_at IS NULL OR posts.published_at <= ?", cutoff)
	}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").
		Preload("FeaturedMedia").
		Preload("Categories").
		Preload("Tags").
		First(&post, id).Error
	return &post, err
}

func (r *postRepository) GetVisibleBySlug(slug string, now time.Time) (*models.Post, error) {
	var post models.Post
	err := r.db.Scopes(visibleAt(now)).
		Preload("FeaturedMedia").
		Preload("Categories").
		Preload("Tags").
		Where("posts.slug = ?", slug).
		First(&post).Error
	return &post, err
}

// GetPublishedByID fetches a redirect target. Only the status is
// checked here, not published_at; a redirect may land on a scheduled
// post, which then 404s on the next hop.
func (r *postRepository) GetPublishedByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("id = ? AND status = ?", id, models.StatusPublished).
		First(&post).Error
	return &post, err
}

func (r *postRepository) GetHistoricalSlug(slug string) (*models.PostSlug, error) {
	var record models.PostSlug
	err := r.db.Where("slug = ?", slug).First(&record).Error
	return &record, err
}

func (r *postRepository) ListVisible(params models.PostListParams, now time.Time) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{}).Scopes(visibleAt(now))

	if params.Featured {
		query = query.Where("posts.featured = ?", true)
	}
	if params.Category != "" {
		query = query.Joins("JOIN post_categories ON post_categories.post_id = posts.id").
			Joins("JOIN categories ON categories.id = post_categories.category_id").
			Where("categories.slug = ?", params.Category)
	}
	if params.Tag != "" {
		query = query.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.slug = ?", params.Tag)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("posts.published_at desc").
		Offset(offset).Limit(params.Limit).
		Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) ListAdmin(params models.AdminPostListParams, now time.Time) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{})

	// The scheduled filter is timestamp-only: a draft with a future
	// published_at counts as scheduled too.
	if params.Scheduled {
		query = query.Where("published_at > ?", now)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").
		Offset(offset).Limit(params.Limit).
		Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) ListFeatured(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("status = ? AND featured = ?", models.StatusPublished, true).
		Order("published_at desc").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// ListPublished returns every published post regardless of schedule,
// for the sitemap.
func (r *postRepository) ListPublished(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("status = ?", models.StatusPublished).
		Order("published_at desc").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Update(id uint, updates map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Post{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

// Rename updates a post whose slug is changing. The historical-slug
// breadcrumb and the post update run in one transaction so a crash
// cannot leave one without the other. The breadcrumb insert is
// best-effort: ON CONFLICT DO NOTHING keeps a leftover record from an
// earlier rename from aborting the rename itself. A historical record
// for the new slug owned by this post is reclaimed first, so renaming
// back to a previous slug works.
func (r *postRepository) Rename(id uint, oldSlug string, updates map[string]interface{}) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if newSlug, ok := updates["slug"].(string); ok {
			if err := tx.Where("slug = ? AND post_id = ?", newSlug, id).
				Delete(&models.PostSlug{}).Error; err != nil {
				return err
			}
		}

		breadcrumb := models.PostSlug{Slug: oldSlug, PostID: id}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&breadcrumb).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Post{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

// Delete removes the post and everything hanging off it: taxonomy join
// rows and historical slugs. Old slugs of a deleted post stop
// redirecting; they are not revived.
func (r *postRepository) Delete(id uint) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostSlug{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

// ReplaceCategories swaps the complete category set in one transaction:
// concurrent readers never observe the half-empty state, and a failed
// insert rolls the delete back.
func (r *postRepository) ReplaceCategories(postID uint, categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostCategory{}).Error; err != nil {
			return err
		}
		for _, categoryID := range categoryIDs {
			row := models.PostCategory{PostID: postID, CategoryID: categoryID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *postRepository) ReplaceTags(postID uint, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			row := models.PostTag{PostID: postID, TagID: tagID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *postRepository) CategoriesOf(postID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Joins("JOIN post_categories ON post_categories.category_id = categories.id").
		Where("post_categories.post_id = ?", postID).
		Order("categories.name").
		Find(&categories).Error
	return categories, err
}

func (r *postRepository) TagsOf(postID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.name").
		Find(&tags).Error
	return tags, err
}
