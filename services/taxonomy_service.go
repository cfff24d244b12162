package services

import (
	"fmt"

	"faithstories/models"
	"faithstories/repositories"
)

// TaxonomyService covers category and tag CRUD. Post association lives
// on PostService since the replace operations are post-centric.
type TaxonomyService interface {
	CreateCategory(req models.CreateTaxonomyRequest) (*models.Category, error)
	UpdateCategory(id uint, req models.UpdateTaxonomyRequest) (*models.Category, error)
	DeleteCategory(id uint) error
	ListCategories() ([]models.Category, error)

	CreateTag(req models.CreateTaxonomyRequest) (*models.Tag, error)
	UpdateTag(id uint, req models.UpdateTaxonomyRequest) (*models.Tag, error)
	DeleteTag(id uint) error
	ListTags() ([]models.Tag, error)
}

type taxonomyService struct {
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
}

func NewTaxonomyService(categoryRepo repositories.CategoryRepository, tagRepo repositories.TagRepository) TaxonomyService {
	return &taxonomyService{
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

func (s *taxonomyService) CreateCategory(req models.CreateTaxonomyRequest) (*models.Category, error) {
	category := &models.Category{Name: req.Name, Slug: req.Slug}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, translateDBError(err)
	}
	return category, nil
}

func (s *taxonomyService) UpdateCategory(id uint, req models.UpdateTaxonomyRequest) (*models.Category, error) {
	updates, err := taxonomyUpdates(req)
	if err != nil {
		return nil, err
	}

	affected, err := s.categoryRepo.Update(id, updates)
	if err != nil {
		return nil, translateDBError(err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}
	return category, nil
}

func (s *taxonomyService) DeleteCategory(id uint) error {
	affected, err := s.categoryRepo.Delete(id)
	if err != nil {
		return translateDBError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *taxonomyService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *taxonomyService) CreateTag(req models.CreateTaxonomyRequest) (*models.Tag, error) {
	tag := &models.Tag{Name: req.Name, Slug: req.Slug}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, translateDBError(err)
	}
	return tag, nil
}

func (s *taxonomyService) UpdateTag(id uint, req models.UpdateTaxonomyRequest) (*models.Tag, error) {
	updates, err := taxonomyUpdates(req)
	if err != nil {
		return nil, err
	}

	affected, err := s.tagRepo.Update(id, updates)
	if err != nil {
		return nil, translateDBError(err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}
	return tag, nil
}

func (s *taxonomyService) DeleteTag(id uint) error {
	affected, err := s.tagRepo.Delete(id)
	if err != nil {
		return translateDBError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *taxonomyService) ListTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func taxonomyUpdates(req models.UpdateTaxonomyRequest) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields provided", ErrValidation)
	}
	return updates, nil
}
