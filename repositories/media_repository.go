package repositories

import (
	"faithstories/models"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(media *models.Media) error
	GetByID(id uint) (*models.Media, error)
	GetAll() ([]models.Media, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

func (r *mediaRepository) GetByID(id uint) (*models.Media, error) {
	var media models.Media
	err := r.db.First(&media, id).Error
	return &media, err
}

func (r *mediaRepository) GetAll() ([]models.Media, error) {
	var media []models.Media
	err := r.db.Order("created_at desc").Find(&media).Error
	return media, err
}
