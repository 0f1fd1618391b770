package services

import (
	"errors"
	"strings"

	"github.com/skilllinker/skilllinker/internal/apperrors"
	"github.com/skilllinker/skilllinker/internal/models"
	"gorm.io/gorm"
)

type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

type SendMessageInput struct {
	ToUserID uint   `json:"to_user_id"`
	JobID    *uint  `json:"job_id"`
	Content  string `json:"content"`
}

func (s *MessageService) Send(fromUserID uint, input SendMessageInput) (*models.Message, error) {
	var details []apperrors.FieldError

	if input.ToUserID == 0 {
		details = append(details, apperrors.Required("to_user_id"))
	}

	if strings.TrimSpace(input.Content) == "" {
		details = append(details, apperrors.Required("content"))
	}

	if len(details) > 0 {
		return nil, apperrors.Validation(details...)
	}

	var recipient models.User

	if err := s.db.First(&recipient, input.ToUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	message := models.Message{
		FromUserID: fromUserID,
		ToUserID:   input.ToUserID,
		JobID:      input.JobID,
		Content:    input.Content,
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}

	return &message, nil
}

// ListForUser returns the messages addressed to a user.
func (s *MessageService) ListForUser(userID uint) ([]models.Message, error) {
	var messages []models.Message

	if err := s.db.Where("to_user_id = ?", userID).Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}

func (s *MessageService) ListForJob(jobID uint) ([]models.Message, error) {
	var messages []models.Message

	if err := s.db.Where("job_id = ?", jobID).Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}

// MarkRead flips the read flag. Marking an already-read message again is a
// no-op, not an error.
func (s *MessageService) MarkRead(id uint) (*models.Message, error) {
	var message models.Message

	if err := s.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if message.Read {
		return &message, nil
	}

	if err := s.db.Model(&message).Update("read", true).Error; err != nil {
		return nil, err
	}

	message.Read = true

	return &message, nil
}
