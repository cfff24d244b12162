package services

import (
	"errors"
	"fmt"
	"time"

	"faithstories/models"
	"faithstories/repositories"

	"gorm.io/gorm"
)

const (
	maxPublicPageSize = 100
	maxAdminPageSize  = 200
	maxFeaturedLimit  = 50
	sitemapLimit      = 50000
)

type PostService interface {
	CreatePost(req models.CreatePostRequest, authorID uint) (*models.Post, error)
	GetPost(id uint) (*models.Post, error)
	UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error)
	PublishPost(id uint) (*models.Post, error)
	UnpublishPost(id uint) (*models.Post, error)
	DeletePost(id uint) error
	ResolveBySlug(slug string) (*models.Post, bool, error)
	ListPublic(params models.PostListParams) ([]models.Post, int64, error)
	ListAdmin(params models.AdminPostListParams) ([]models.Post, int64, error)
	ListFeatured(limit int) ([]models.Post, error)
	ListSitemap() ([]models.Post, error)
	SetCategories(postID uint, categoryIDs []uint) ([]models.Category, error)
	SetTags(postID uint, tagIDs []uint) ([]models.Tag, error)
}

type postService struct {
	postRepo repositories.PostRepository
	now      func() time.Time
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{
		postRepo: postRepo,
		now:      time.Now,
	}
}

func (s *postService) CreatePost(req models.CreatePostRequest, authorID uint) (*models.Post, error) {
	// A slug still held as someone else's redirect breadcrumb is taken.
	if err := s.checkSlugFree(req.Slug, 0); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	post := &models.Post{
		AuthorID:        &authorID,
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Status:          status,
		PublishedAt:     req.PublishedAt,
		Featured:        req.Featured,
		FeaturedMediaID: req.FeaturedMediaID,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaImageURL:    req.MetaImageURL,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, translateDBError(err)
	}

	return s.GetPost(post.ID)
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}
	return post, nil
}

// UpdatePost applies a partial update. status and published_at move
// independently on purpose: setting status=published with a future
// published_at is how scheduling works, and nothing here second-guesses
// the operator. Public visibility is computed at read time.
func (s *postService) UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error) {
	current, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.PublishedAt.Set {
		updates["published_at"] = req.PublishedAt.Value
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.FeaturedMediaID != nil {
		updates["featured_media_id"] = *req.FeaturedMediaID
	}
	if req.MetaTitle != nil {
		updates["meta_title"] = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		updates["meta_description"] = *req.MetaDescription
	}
	if req.MetaImageURL != nil {
		updates["meta_image_url"] = *req.MetaImageURL
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields provided", ErrValidation)
	}
	updates["updated_at"] = s.now()

	renaming := req.Slug != nil && *req.Slug != current.Slug

	var affected int64
	if renaming {
		if err := s.checkSlugFree(*req.Slug, id); err != nil {
			return nil, err
		}
		affected, err = s.postRepo.Rename(id, current.Slug, updates)
	} else {
		affected, err = s.postRepo.Update(id, updates)
	}
	if err != nil {
		return nil, translateDBError(err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetPost(id)
}

func (s *postService) PublishPost(id uint) (*models.Post, error) {
	now := s.now()
	affected, err := s.postRepo.Update(id, map[string]interface{}{
		"status":       models.StatusPublished,
		"published_at": now,
		"updated_at":   now,
	})
	if err != nil {
		return nil, translateDBError(err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.GetPost(id)
}

func (s *postService) UnpublishPost(id uint) (*models.Post, error) {
	affected, err := s.postRepo.Update(id, map[string]interface{}{
		"status":       models.StatusDraft,
		"published_at": nil,
		"updated_at":   s.now(),
	})
	if err != nil {
		return nil, translateDBError(err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.GetPost(id)
}

func (s *postService) DeletePost(id uint) error {
	affected, err := s.postRepo.Delete(id)
	if err != nil {
		return translateDBError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ResolveBySlug maps a public slug to its post. A live, visible post
// under that slug wins; otherwise a historical record produces the
// current post with redirect=true so the handler can answer 301 with
// the canonical slug. Old slugs survive renames precisely for this.
func (s *postService) ResolveBySlug(slug string) (*models.Post, bool, error) {
	post, err := s.postRepo.GetVisibleBySlug(slug, s.now())
	if err == nil {
		return post, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	record, err := s.postRepo.GetHistoricalSlug(slug)
	if err != nil {
		return nil, false, translateDBError(err)
	}

	target, err := s.postRepo.GetPublishedByID(record.PostID)
	if err != nil {
		return nil, false, translateDBError(err)
	}

	return target, true, nil
}

func (s *postService) ListPublic(params models.PostListParams) ([]models.Post, int64, error) {
	params.Page = clampPage(params.Page)
	params.Limit = clampLimit(params.Limit, 12, maxPublicPageSize)
	return s.postRepo.ListVisible(params, s.now())
}

func (s *postService) ListAdmin(params models.AdminPostListParams) ([]models.Post, int64, error) {
	params.Page = clampPage(params.Page)
	params.Limit = clampLimit(params.Limit, 20, maxAdminPageSize)
	return s.postRepo.ListAdmin(params, s.now())
}

func (s *postService) ListFeatured(limit int) ([]models.Post, error) {
	return s.postRepo.ListFeatured(clampLimit(limit, 6, maxFeaturedLimit))
}

func (s *postService) ListSitemap() ([]models.Post, error) {
	return s.postRepo.ListPublished(sitemapLimit)
}

func (s *postService) SetCategories(postID uint, categoryIDs []uint) ([]models.Category, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, translateDBError(err)
	}
	if err := s.postRepo.ReplaceCategories(postID, dedupe(categoryIDs)); err != nil {
		return nil, translateDBError(err)
	}
	return s.postRepo.CategoriesOf(postID)
}

func (s *postService) SetTags(postID uint, tagIDs []uint) ([]models.Tag, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, translateDBError(err)
	}
	if err := s.postRepo.ReplaceTags(postID, dedupe(tagIDs)); err != nil {
		return nil, translateDBError(err)
	}
	return s.postRepo.TagsOf(postID)
}

// checkSlugFree rejects a slug held as a historical record by another
// post. Live-post uniqueness is enforced by the unique index on
// posts.slug. selfID exempts a post's own breadcrumbs so it can rename
// back to a slug it used before.
func (s *postService) checkSlugFree(slug string, selfID uint) error {
	record, err := s.postRepo.GetHistoricalSlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if record.PostID != selfID {
		return ErrConflict
	}
	return nil
}

// dedupe compacts duplicate ids, keeping first occurrence, so operator
// input cannot trip the join table's composite key mid-replace.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}
