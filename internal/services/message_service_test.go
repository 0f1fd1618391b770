package services

import (
	"testing"

	"github.com/skilllinker/skilllinker/internal/apperrors"
	"github.com/skilllinker/skilllinker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageValidation(t *testing.T) {
	database := newTestDB(t)
	svc := NewMessageService(database)

	sender := createTestUser(t, database, "sender@example.com", types.RoleSDP)

	_, err := svc.Send(sender.ID, SendMessageInput{})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Details, 2) // to_user_id and content
}

func TestSendMessageUnknownRecipient(t *testing.T) {
	database := newTestDB(t)
	svc := NewMessageService(database)

	sender := createTestUser(t, database, "sender@example.com", types.RoleSDP)

	_, err := svc.Send(sender.ID, SendMessageInput{ToUserID: 404, Content: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSendAndListMessages(t *testing.T) {
	database := newTestDB(t)
	svc := NewMessageService(database)

	sender := createTestUser(t, database, "sender@example.com", types.RoleSDP)
	recipient := createTestUser(t, database, "recipient@example.com", types.RoleAssessor)
	job := createTestJob(t, database, sender, "Discussed job")
	jobID := job.ID

	message, err := svc.Send(sender.ID, SendMessageInput{
		ToUserID: recipient.ID,
		JobID:    &jobID,
		Content:  "Are you available next week?",
	})
	require.NoError(t, err)
	assert.False(t, message.Read)

	forRecipient, err := svc.ListForUser(recipient.ID)
	require.NoError(t, err)
	require.Len(t, forRecipient, 1)

	forSender, err := svc.ListForUser(sender.ID)
	require.NoError(t, err)
	assert.Empty(t, forSender, "sender is not a recipient of their own message")

	forJob, err := svc.ListForJob(job.ID)
	require.NoError(t, err)
	assert.Len(t, forJob, 1)
}

func TestMarkReadIdempotent(t *testing.T) {
	database := newTestDB(t)
	svc := NewMessageService(database)

	sender := createTestUser(t, database, "sender@example.com", types.RoleSDP)
	recipient := createTestUser(t, database, "recipient@example.com", types.RoleAssessor)

	message, err := svc.Send(sender.ID, SendMessageInput{ToUserID: recipient.ID, Content: "ping"})
	require.NoError(t, err)

	read, err := svc.MarkRead(message.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	// Marking again is a no-op, not an error.
	readAgain, err := svc.MarkRead(message.ID)
	require.NoError(t, err)
	assert.True(t, readAgain.Read)

	_, err = svc.MarkRead(12345)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
