package services

import (
	"errors"

	"github.com/skilllinker/skilllinker/internal/apperrors"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/types"
	"gorm.io/gorm"
)

type ResumeService struct {
	db *gorm.DB
}

func NewResumeService(db *gorm.DB) *ResumeService {
	return &ResumeService{db: db}
}

type CreateResumeInput struct {
	FileName    string
	ContentType string
	Data        []byte
	Description string
}

// Create trusts its bytes: size and MIME type were enforced at the upload
// boundary.
func (s *ResumeService) Create(ownerID uint, input CreateResumeInput) (*models.Resume, error) {
	resume := models.Resume{
		UserID:      ownerID,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		Data:        input.Data,
		Description: input.Description,
	}

	if err := s.db.Create(&resume).Error; err != nil {
		return nil, err
	}

	return &resume, nil
}

// List returns resume metadata without the file bytes. Admins see every
// resume, everyone else only their own.
func (s *ResumeService) List(caller models.User) ([]models.Resume, error) {
	query := s.db.Select("id", "created_at", "updated_at", "user_id", "file_name", "content_type", "description")

	if caller.UserType != types.RoleAdmin {
		query = query.Where("user_id = ?", caller.ID)
	}

	var resumes []models.Resume

	if err := query.Find(&resumes).Error; err != nil {
		return nil, err
	}

	return resumes, nil
}

// Get returns the full record, bytes included, to the owner or an admin.
func (s *ResumeService) Get(id uint, caller models.User) (*models.Resume, error) {
	var resume models.Resume

	if err := s.db.First(&resume, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if resume.UserID != caller.ID && caller.UserType != types.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	return &resume, nil
}

func (s *ResumeService) Delete(id uint, caller models.User) error {
	resume, err := s.Get(id, caller)

	if err != nil {
		return err
	}

	return s.db.Delete(resume).Error
}
