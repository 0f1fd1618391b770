package services

import (
	"testing"

	"github.com/skilllinker/skilllinker/internal/apperrors"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApplicationDefaultsCoverLetter(t *testing.T) {
	database := newTestDB(t)
	svc := NewApplicationService(database)

	sdp := createTestUser(t, database, "sdp@example.com", types.RoleSDP)
	assessor := createTestUser(t, database, "assessor@example.com", types.RoleAssessor)
	job := createTestJob(t, database, sdp, "Assessment job")

	application, err := svc.Create(assessor.ID, CreateApplicationInput{JobID: job.ID})
	require.NoError(t, err)

	assert.Equal(t, DefaultCoverLetter, application.CoverLetter)
	assert.Equal(t, types.ApplicationStatusPending, application.Status)
	assert.False(t, application.ApplicationDate.IsZero())
}

func TestCreateApplicationMissingJob(t *testing.T) {
	database := newTestDB(t)
	svc := NewApplicationService(database)

	assessor := createTestUser(t, database, "assessor@example.com", types.RoleAssessor)

	_, err := svc.Create(assessor.ID, CreateApplicationInput{JobID: 42})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var validationErr *apperrors.ValidationError
	_, err = svc.Create(assessor.ID, CreateApplicationInput{})
	require.ErrorAs(t, err, &validationErr)
}

func TestDuplicateApplicationsAllowed(t *testing.T) {
	database := newTestDB(t)
	svc := NewApplicationService(database)

	sdp := createTestUser(t, database, "sdp@example.com", types.RoleSDP)
	assessor := createTestUser(t, database, "assessor@example.com", types.RoleAssessor)
	job := createTestJob(t, database, sdp, "Popular job")

	_, err := svc.Create(assessor.ID, CreateApplicationInput{JobID: job.ID})
	require.NoError(t, err)

	// No uniqueness on (job, user): a second application must succeed.
	_, err = svc.Create(assessor.ID, CreateApplicationInput{JobID: job.ID})
	require.NoError(t, err)

	var count int64
	require.NoError(t, database.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", job.ID, assessor.ID).
		Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestUpdateApplicationStatus(t *testing.T) {
	database := newTestDB(t)
	svc := NewApplicationService(database)

	sdp := createTestUser(t, database, "sdp@example.com", types.RoleSDP)
	assessor := createTestUser(t, database, "assessor@example.com", types.RoleAssessor)
	admin := createTestUser(t, database, "admin@example.com", types.RoleAdmin)
	job := createTestJob(t, database, sdp, "Review job")

	application, err := svc.Create(assessor.ID, CreateApplicationInput{JobID: job.ID})
	require.NoError(t, err)

	// The applicant may not decide their own application.
	_, err = svc.UpdateStatus(application.ID, assessor, types.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Job owner may.
	updated, err := svc.UpdateStatus(application.ID, sdp, types.ApplicationStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationStatusRejected, updated.Status)

	// No terminal-state lock: a rejected application can be re-accepted,
	// here by an admin.
	updated, err = svc.UpdateStatus(application.ID, admin, types.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationStatusAccepted, updated.Status)

	var validationErr *apperrors.ValidationError
	_, err = svc.UpdateStatus(application.ID, sdp, "shortlisted")
	require.ErrorAs(t, err, &validationErr)
}

func TestListForJob(t *testing.T) {
	database := newTestDB(t)
	svc := NewApplicationService(database)

	sdp := createTestUser(t, database, "sdp@example.com", types.RoleSDP)
	assessor := createTestUser(t, database, "assessor@example.com", types.RoleAssessor)
	stranger := createTestUser(t, database, "stranger@example.com", types.RoleModerator)
	job := createTestJob(t, database, sdp, "Staffed job")

	_, err := svc.Create(assessor.ID, CreateApplicationInput{JobID: job.ID})
	require.NoError(t, err)

	_, err = svc.ListForJob(job.ID, stranger)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	applications, err := svc.ListForJob(job.ID, sdp)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, assessor.ID, applications[0].Applicant.ID)

	_, err = svc.ListForJob(999, sdp)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteApplication(t *testing.T) {
	database := newTestDB(t)
	svc := NewApplicationService(database)

	sdp := createTestUser(t, database, "sdp@example.com", types.RoleSDP)
	assessor := createTestUser(t, database, "assessor@example.com", types.RoleAssessor)
	moderator := createTestUser(t, database, "moderator@example.com", types.RoleModerator)
	job := createTestJob(t, database, sdp, "Short-lived job")

	application, err := svc.Create(assessor.ID, CreateApplicationInput{JobID: job.ID})
	require.NoError(t, err)

	err = svc.Delete(application.ID, moderator)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, svc.Delete(application.ID, assessor))

	_, err = svc.Get(application.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
