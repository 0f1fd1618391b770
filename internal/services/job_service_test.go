package services

import (
	"encoding/json"
	"testing"

	"github.com/skilllinker/skilllinker/internal/apperrors"
	"github.com/skilllinker/skilllinker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJobRequiresSDP(t *testing.T) {
	database := newTestDB(t)
	svc := NewJobService(database)

	assessor := createTestUser(t, database, "assessor@example.com", types.RoleAssessor)

	_, err := svc.Create(assessor, CreateJobInput{
		Title:       "Moderation contract",
		Description: "Moderate assessments",
	})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreateJobValidation(t *testing.T) {
	database := newTestDB(t)
	svc := NewJobService(database)

	sdp := createTestUser(t, database, "sdp@example.com", types.RoleSDP)

	_, err := svc.Create(sdp, CreateJobInput{})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Details, 2) // title and description
}

func TestCreateJobDefaults(t *testing.T) {
	database := newTestDB(t)
	svc := NewJobService(database)

	sdp := createTestUser(t, database, "sdp@example.com", types.RoleSDP)

	job, err := svc.Create(sdp, CreateJobInput{
		Title:                  "Assessor needed",
		Description:            "Conduct trade test assessments",
		RequiredQualifications: []string{"NQF Level 6", "Registered assessor"},
	})
	require.NoError(t, err)

	assert.Equal(t, sdp.ID, job.SdpID)
	assert.Equal(t, types.JobStatusOpen, job.Status)
	assert.False(t, job.PostedDate.IsZero())

	var qualifications []string
	require.NoError(t, json.Unmarshal(job.RequiredQualifications, &qualifications))
	assert.Equal(t, []string{"NQF Level 6", "Registered assessor"}, qualifications)
}

func TestUpdateJobNotOwner(t *testing.T) {
	database := newTestDB(t)
	svc := NewJobService(database)

	owner := createTestUser(t, database, "owner@example.com", types.RoleSDP)
	other := createTestUser(t, database, "other@example.com", types.RoleSDP)
	job := createTestJob(t, database, owner, "Original title")

	_, err := svc.Update(job.ID, other.ID, UpdateJobInput{Title: "Hijacked"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// The row must be unchanged.
	unchanged, err := svc.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original title", unchanged.Title)
}

func TestUpdateJobStatusEnum(t *testing.T) {
	database := newTestDB(t)
	svc := NewJobService(database)

	owner := createTestUser(t, database, "owner@example.com", types.RoleSDP)
	job := createTestJob(t, database, owner, "Status job")

	_, err := svc.Update(job.ID, owner.ID, UpdateJobInput{Status: "paused"})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// No transition table: closed may be set straight from open, and open
	// may be restored from closed.
	updated, err := svc.Update(job.ID, owner.ID, UpdateJobInput{Status: types.JobStatusClosed})
	require.NoError(t, err)
	assert.Equal(t, types.JobStatusClosed, updated.Status)

	updated, err = svc.Update(job.ID, owner.ID, UpdateJobInput{Status: types.JobStatusOpen})
	require.NoError(t, err)
	assert.Equal(t, types.JobStatusOpen, updated.Status)
}

func TestDeleteJob(t *testing.T) {
	database := newTestDB(t)
	svc := NewJobService(database)

	owner := createTestUser(t, database, "owner@example.com", types.RoleSDP)
	other := createTestUser(t, database, "other@example.com", types.RoleSDP)
	job := createTestJob(t, database, owner, "Doomed job")

	err := svc.Delete(job.ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, svc.Delete(job.ID, owner.ID))

	_, err = svc.Get(job.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListWithPoster(t *testing.T) {
	database := newTestDB(t)
	svc := NewJobService(database)

	owner := createTestUser(t, database, "owner@example.com", types.RoleSDP)
	createTestJob(t, database, owner, "First job")
	createTestJob(t, database, owner, "Second job")

	jobs, err := svc.ListWithPoster()
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	for _, job := range jobs {
		assert.Equal(t, owner.ID, job.Poster.ID)
		assert.Equal(t, owner.Email, job.Poster.Email)
	}
}
