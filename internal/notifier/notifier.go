package notifier

import (
	"context"
	"fmt"

	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/types"
	"gorm.io/gorm"
)

const broadcastBatchSize = 100

type Notifier struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

// BroadcastJobPosted creates one message per eligible recipient: every user
// other than the poster whose role is in the eligible set. The batch create
// is not transactional; partial success is acceptable and not rolled back.
func (n *Notifier) BroadcastJobPosted(ctx context.Context, job models.Job, posterID uint) ([]models.Message, error) {
	var recipients []models.User

	err := n.db.WithContext(ctx).
		Where("id != ? AND user_type IN ?", posterID, types.NotificationEligibleRoles).
		Find(&recipients).Error

	if err != nil {
		return nil, fmt.Errorf("listing recipients for job %d: %w", job.ID, err)
	}

	if len(recipients) == 0 {
		return nil, nil
	}

	jobID := job.ID
	content := fmt.Sprintf("A new job has been posted: %s", job.Title)

	messages := make([]models.Message, 0, len(recipients))

	for _, recipient := range recipients {
		messages = append(messages, models.Message{
			FromUserID: posterID,
			ToUserID:   recipient.ID,
			JobID:      &jobID,
			Content:    content,
		})
	}

	if err := n.db.WithContext(ctx).CreateInBatches(&messages, broadcastBatchSize).Error; err != nil {
		return nil, fmt.Errorf("creating broadcast messages for job %d: %w", job.ID, err)
	}

	return messages, nil
}
