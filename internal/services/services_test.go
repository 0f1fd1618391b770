package services

import (
	"fmt"
	"testing"

	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache DB so every pooled connection sees the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Message{},
		&models.Payment{},
		&models.Resume{},
	)
	require.NoError(t, err)

	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
		UserType:     role,
		AgreeToTerms: true,
	}

	require.NoError(t, database.Create(&user).Error)

	return user
}

func createTestJob(t *testing.T, database *gorm.DB, poster models.User, title string) models.Job {
	t.Helper()

	svc := NewJobService(database)

	job, err := svc.Create(poster, CreateJobInput{
		Title:       title,
		Description: "A job for testing",
		Location:    "Cape Town",
		Budget:      1500,
	})
	require.NoError(t, err)

	return *job
}
