package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wawasandigital/contact-api/internal/models"
)

// ContactRepository persists accepted contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository constructs a repository backed by GORM.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status}).
		Error
}
