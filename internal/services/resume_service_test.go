package services

import (
	"bytes"
	"testing"

	"github.com/skilllinker/skilllinker/internal/apperrors"
	"github.com/skilllinker/skilllinker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeRoundTrip(t *testing.T) {
	database := newTestDB(t)
	svc := NewResumeService(database)

	owner := createTestUser(t, database, "owner@example.com", types.RoleAssessor)
	content := []byte("%PDF-1.4 not actually a pdf but the bytes are what matter\x00\x01\x02")

	resume, err := svc.Create(owner.ID, CreateResumeInput{
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Data:        content,
		Description: "Trade test assessor CV",
	})
	require.NoError(t, err)

	fetched, err := svc.Get(resume.ID, owner)
	require.NoError(t, err)

	// Bytes must come back exactly as stored.
	assert.True(t, bytes.Equal(content, fetched.Data))
	assert.Equal(t, "cv.pdf", fetched.FileName)
	assert.Equal(t, "application/pdf", fetched.ContentType)
}

func TestResumeAccessControl(t *testing.T) {
	database := newTestDB(t)
	svc := NewResumeService(database)

	owner := createTestUser(t, database, "owner@example.com", types.RoleAssessor)
	stranger := createTestUser(t, database, "stranger@example.com", types.RoleModerator)
	admin := createTestUser(t, database, "admin@example.com", types.RoleAdmin)

	resume, err := svc.Create(owner.ID, CreateResumeInput{
		FileName:    "cv.txt",
		ContentType: "text/plain",
		Data:        []byte("experience"),
	})
	require.NoError(t, err)

	_, err = svc.Get(resume.ID, stranger)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Get(resume.ID, admin)
	assert.NoError(t, err)

	err = svc.Delete(resume.ID, stranger)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, svc.Delete(resume.ID, owner))

	_, err = svc.Get(resume.ID, owner)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResumeListScoping(t *testing.T) {
	database := newTestDB(t)
	svc := NewResumeService(database)

	owner := createTestUser(t, database, "owner@example.com", types.RoleAssessor)
	other := createTestUser(t, database, "other@example.com", types.RoleModerator)
	admin := createTestUser(t, database, "admin@example.com", types.RoleAdmin)

	_, err := svc.Create(owner.ID, CreateResumeInput{FileName: "a.txt", ContentType: "text/plain", Data: []byte("a")})
	require.NoError(t, err)
	_, err = svc.Create(other.ID, CreateResumeInput{FileName: "b.txt", ContentType: "text/plain", Data: []byte("b")})
	require.NoError(t, err)

	own, err := svc.List(owner)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "a.txt", own[0].FileName)
	assert.Empty(t, own[0].Data, "listing returns metadata only")

	all, err := svc.List(admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
