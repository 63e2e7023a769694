package repository

import (
	"context"

	"github.com/yukikurage/task-tracker/internal/database"
	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func preloadAttachments(db *gorm.DB) *gorm.DB {
	return db.Order("attachments.id ASC")
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindOwned finds a task by ID scoped to its owner
func (r *GormTaskRepository) FindOwned(ctx context.Context, ownerID, id uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(ownerID)).
		Preload("Attachments", preloadAttachments).
		Where("tasks.id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListOwned retrieves the owner's tasks, optionally filtered by status
func (r *GormTaskRepository) ListOwned(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	tasks := []models.Task{}
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Scopes(database.OwnedBy(filter.OwnerID), database.WithStatus(filter.Status), database.DueDateOrder).
		Preload("Attachments", preloadAttachments).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateOwned locks the owned row, applies updates and re-reads it, all in
// one transaction.
func (r *GormTaskRepository) UpdateOwned(ctx context.Context, ownerID, id uint64, updates map[string]interface{}) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(database.OwnedBy(ownerID)).
			Where("tasks.id = ?", id).
			First(&task).Error; err != nil {
			return err
		}

		if len(updates) > 0 {
			if err := tx.Model(&models.Task{}).
				Where("id = ? AND owner_id = ?", id, ownerID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		task = models.Task{}
		return tx.Scopes(database.OwnedBy(ownerID)).
			Preload("Attachments", preloadAttachments).
			Where("tasks.id = ?", id).
			First(&task).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteOwned removes the task's attachment rows and then the task row.
// Blobs must be removed by the caller beforehand.
func (r *GormTaskRepository) DeleteOwned(ctx context.Context, ownerID, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(database.OwnedBy(ownerID)).
			Where("tasks.id = ?", id).
			First(&task).Error; err != nil {
			return err
		}

		if err := tx.Where("task_id = ?", task.ID).Delete(&models.Attachment{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND owner_id = ?", task.ID, ownerID).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
