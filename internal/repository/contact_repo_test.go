package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wawasandigital/contact-api/internal/models"
)

func setupContactDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM contact_messages")
	})

	return db
}

func TestContactRepositoryCreateAndUpdateStatus(t *testing.T) {
	db := setupContactDB(t)
	repo := NewContactRepository(db)

	message := models.ContactMessage{
		Ticket:  "TKT-ABC123-WXYZ",
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Pricing",
		Message: "How much for X?",
		Lang:    "en",
		Status:  models.ContactStatusReceived,
	}
	require.NoError(t, repo.Create(context.Background(), &message))
	require.NotZero(t, message.ID)

	require.NoError(t, repo.UpdateStatus(context.Background(), message.ID, models.ContactStatusSent))

	var stored models.ContactMessage
	require.NoError(t, db.First(&stored, message.ID).Error)
	require.Equal(t, models.ContactStatusSent, stored.Status)
	require.Equal(t, "TKT-ABC123-WXYZ", stored.Ticket)
}
