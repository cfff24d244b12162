package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"faithstories/config"
	"faithstories/models"
	"faithstories/repositories"
)

type MediaService interface {
	SaveUpload(file *multipart.FileHeader, uploadedBy uint) (*models.Media, error)
	GetMedia(id uint) (*models.Media, error)
	ListMedia() ([]models.Media, error)
}

type mediaService struct {
	mediaRepo repositories.MediaRepository
}

func NewMediaService(mediaRepo repositories.MediaRepository) MediaService {
	return &mediaService{mediaRepo: mediaRepo}
}

// SaveUpload writes the uploaded file under config.UploadDir and records
// a media row whose URL the frontends use directly.
func (s *mediaService) SaveUpload(file *multipart.FileHeader, uploadedBy uint) (*models.Media, error) {
	if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitizeFilename(file.Filename))
	dst := filepath.Join(config.UploadDir, name)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return nil, err
	}

	media := &models.Media{
		URL:        config.SiteBaseURL + "/uploads/" + name,
		MimeType:   file.Header.Get("Content-Type"),
		UploadedBy: &uploadedBy,
	}

	if err := s.mediaRepo.Create(media); err != nil {
		return nil, translateDBError(err)
	}
	return media, nil
}

func (s *mediaService) GetMedia(id uint) (*models.Media, error) {
	media, err := s.mediaRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}
	return media, nil
}

func (s *mediaService) ListMedia() ([]models.Media, error) {
	return s.mediaRepo.GetAll()
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "-")
	return name
}
