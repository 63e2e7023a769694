package repository

import (
	"context"

	"github.com/yukikurage/task-tracker/internal/database"
	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAttachmentRepository is a GORM implementation of AttachmentRepository
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new AttachmentRepository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

// ownedAttachment joins through the parent task so ownership is never taken
// from the attachment row itself.
func ownedAttachment(db *gorm.DB, ownerID, id uint64) *gorm.DB {
	return db.Model(&models.Attachment{}).
		Joins("JOIN tasks ON tasks.id = attachments.task_id").
		Scopes(database.OwnedBy(ownerID)).
		Where("attachments.id = ?", id)
}

// CreateForOwnedTask checks ownership of the task and inserts the rows in
// one transaction.
func (r *GormAttachmentRepository) CreateForOwnedTask(ctx context.Context, ownerID, taskID uint64, attachments []models.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(database.OwnedBy(ownerID)).
			Where("tasks.id = ?", taskID).
			First(&task).Error; err != nil {
			return err
		}

		for i := range attachments {
			attachments[i].TaskID = task.ID
		}
		return tx.Create(&attachments).Error
	})
}

// FindOwned finds an attachment by ID scoped to its task's owner
func (r *GormAttachmentRepository) FindOwned(ctx context.Context, ownerID, id uint64) (*models.Attachment, error) {
	var attachment models.Attachment
	err := ownedAttachment(r.db.WithContext(ctx), ownerID, id).
		Select("attachments.*").
		First(&attachment).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// FindByStoredName finds an attachment by its blob key. Blob keys are served
// publicly, so no owner is applied.
func (r *GormAttachmentRepository) FindByStoredName(ctx context.Context, storedName string) (*models.Attachment, error) {
	var attachment models.Attachment
	err := r.db.WithContext(ctx).
		Where("stored_name = ?", storedName).
		First(&attachment).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// DeleteOwned deletes an attachment row after re-checking ownership in the
// same transaction.
func (r *GormAttachmentRepository) DeleteOwned(ctx context.Context, ownerID, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attachment models.Attachment
		if err := ownedAttachment(tx, ownerID, id).
			Select("attachments.*").
			First(&attachment).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Attachment{}, attachment.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
