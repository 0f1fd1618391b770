package services

import (
	"errors"
	"strings"
	"time"

	"github.com/skilllinker/skilllinker/internal/apperrors"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/types"
	"gorm.io/gorm"
)

// DefaultCoverLetter fills in when an applicant submits without one.
const DefaultCoverLetter = "No cover letter provided"

type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

type CreateApplicationInput struct {
	JobID       uint   `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
}

func (s *ApplicationService) Create(applicantID uint, input CreateApplicationInput) (*models.Application, error) {
	if input.JobID == 0 {
		return nil, apperrors.Validation(apperrors.Required("job_id"))
	}

	var job models.Job

	if err := s.db.First(&job, input.JobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	coverLetter := strings.TrimSpace(input.CoverLetter)

	if coverLetter == "" {
		coverLetter = DefaultCoverLetter
	}

	application := models.Application{
		JobID:           input.JobID,
		UserID:          applicantID,
		CoverLetter:     coverLetter,
		Status:          types.ApplicationStatusPending,
		ApplicationDate: time.Now(),
	}

	if err := s.db.Create(&application).Error; err != nil {
		return nil, err
	}

	return &application, nil
}

// ListWithRelations returns all applications joined with their job and
// applicant for display.
func (s *ApplicationService) ListWithRelations() ([]models.Application, error) {
	var applications []models.Application

	if err := s.db.Preload("Job").Preload("Applicant").Find(&applications).Error; err != nil {
		return nil, err
	}

	return applications, nil
}

func (s *ApplicationService) Get(id uint) (*models.Application, error) {
	var application models.Application

	if err := s.db.Preload("Job").Preload("Applicant").First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &application, nil
}

// ListForJob returns a job's applications to its owner or an admin.
func (s *ApplicationService) ListForJob(jobID uint, caller models.User) ([]models.Application, error) {
	var job models.Job

	if err := s.db.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if job.SdpID != caller.ID && caller.UserType != types.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	var applications []models.Application

	if err := s.db.Preload("Applicant").Where("job_id = ?", jobID).Find(&applications).Error; err != nil {
		return nil, err
	}

	return applications, nil
}

// UpdateStatus validates enum membership only; any status may be set from
// any other.
func (s *ApplicationService) UpdateStatus(id uint, caller models.User, status string) (*models.Application, error) {
	if !types.IsValidApplicationStatus(status) {
		return nil, apperrors.Validation(apperrors.Field("status", "status must be one of pending, accepted, rejected"))
	}

	application, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	if application.Job.SdpID != caller.ID && caller.UserType != types.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	if err := s.db.Model(application).Update("status", status).Error; err != nil {
		return nil, err
	}

	application.Status = status

	return application, nil
}

func (s *ApplicationService) Delete(id uint, caller models.User) error {
	application, err := s.Get(id)

	if err != nil {
		return err
	}

	if application.UserID != caller.ID && caller.UserType != types.RoleAdmin {
		return apperrors.ErrForbidden
	}

	return s.db.Delete(application).Error
}
