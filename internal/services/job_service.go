package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/skilllinker/skilllinker/internal/apperrors"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

type CreateJobInput struct {
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	Location               string     `json:"location"`
	Budget                 float64    `json:"budget"`
	RequiredQualifications []string   `json:"required_qualifications"`
	Deadline               *time.Time `json:"deadline"`
}

type UpdateJobInput struct {
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	Location               string     `json:"location"`
	Budget                 *float64   `json:"budget"`
	Status                 string     `json:"status"`
	RequiredQualifications []string   `json:"required_qualifications"`
	Deadline               *time.Time `json:"deadline"`
}

func (s *JobService) Create(poster models.User, input CreateJobInput) (*models.Job, error) {
	var details []apperrors.FieldError

	if strings.TrimSpace(input.Title) == "" {
		details = append(details, apperrors.Required("title"))
	}

	if strings.TrimSpace(input.Description) == "" {
		details = append(details, apperrors.Required("description"))
	}

	if len(details) > 0 {
		return nil, apperrors.Validation(details...)
	}

	// Jobs may only be posted by an SDP. The route gate checks this too,
	// but the invariant belongs to the service.
	if poster.UserType != types.RoleSDP {
		return nil, apperrors.ErrForbidden
	}

	qualifications, err := marshalQualifications(input.RequiredQualifications)

	if err != nil {
		return nil, err
	}

	job := models.Job{
		SdpID:                  poster.ID,
		Title:                  strings.TrimSpace(input.Title),
		Description:            input.Description,
		Location:               input.Location,
		Budget:                 input.Budget,
		Status:                 types.JobStatusOpen,
		RequiredQualifications: qualifications,
		PostedDate:             time.Now(),
		Deadline:               input.Deadline,
	}

	if err := s.db.Create(&job).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

// ListWithPoster returns all jobs joined with their posting SDP.
func (s *JobService) ListWithPoster() ([]models.Job, error) {
	var jobs []models.Job

	if err := s.db.Preload("Poster").Find(&jobs).Error; err != nil {
		return nil, err
	}

	return jobs, nil
}

func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job

	if err := s.db.Preload("Poster").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &job, nil
}

func (s *JobService) Update(id uint, callerID uint, input UpdateJobInput) (*models.Job, error) {
	job, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	if job.SdpID != callerID {
		return nil, apperrors.ErrForbidden
	}

	// Status is validated against the enum only; no transition table is
	// enforced.
	if input.Status != "" && !types.IsValidJobStatus(input.Status) {
		return nil, apperrors.Validation(apperrors.Field("status", "status must be one of open, in-progress, closed"))
	}

	updates := make(map[string]interface{})

	if input.Title != "" {
		updates["title"] = strings.TrimSpace(input.Title)
	}

	if input.Description != "" {
		updates["description"] = input.Description
	}

	if input.Location != "" {
		updates["location"] = input.Location
	}

	if input.Budget != nil {
		updates["budget"] = *input.Budget
	}

	if input.Status != "" {
		updates["status"] = input.Status
	}

	if input.Deadline != nil {
		updates["deadline"] = *input.Deadline
	}

	if input.RequiredQualifications != nil {
		qualifications, err := marshalQualifications(input.RequiredQualifications)

		if err != nil {
			return nil, err
		}

		updates["required_qualifications"] = qualifications
	}

	if len(updates) == 0 {
		return nil, apperrors.Validation(apperrors.Field("body", "no valid fields to update"))
	}

	if err := s.db.Model(job).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(id)
}

func (s *JobService) Delete(id uint, callerID uint) error {
	job, err := s.Get(id)

	if err != nil {
		return err
	}

	if job.SdpID != callerID {
		return apperrors.ErrForbidden
	}

	return s.db.Delete(job).Error
}

func marshalQualifications(qualifications []string) (datatypes.JSON, error) {
	if qualifications == nil {
		qualifications = []string{}
	}

	raw, err := json.Marshal(qualifications)

	if err != nil {
		return nil, err
	}

	return datatypes.JSON(raw), nil
}
