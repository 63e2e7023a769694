package repository

import (
	"context"

	"github.com/yukikurage/task-tracker/internal/models"
)

// Every Task and Attachment lookup below takes the caller's owner ID and
// applies it in the same statement or transaction as the lookup itself.
// A row owned by someone else is indistinguishable from a missing row:
// both yield gorm.ErrRecordNotFound.

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a user by exact (case-sensitive) username
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindOwned finds an owned task with its attachments
	FindOwned(ctx context.Context, ownerID, id uint64) (*models.Task, error)

	// ListOwned retrieves owned tasks ordered by due date, undated last
	ListOwned(ctx context.Context, filter TaskFilter) ([]models.Task, error)

	// UpdateOwned applies updates to an owned task and returns the stored row
	UpdateOwned(ctx context.Context, ownerID, id uint64, updates map[string]interface{}) (*models.Task, error)

	// DeleteOwned deletes an owned task and its attachment rows
	DeleteOwned(ctx context.Context, ownerID, id uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	OwnerID uint64
	Status  *models.TaskStatus
}

// AttachmentRepository defines the interface for attachment data access
type AttachmentRepository interface {
	// CreateForOwnedTask inserts attachments if the task is still owned by ownerID
	CreateForOwnedTask(ctx context.Context, ownerID, taskID uint64, attachments []models.Attachment) error

	// FindOwned finds an attachment whose parent task is owned by ownerID
	FindOwned(ctx context.Context, ownerID, id uint64) (*models.Attachment, error)

	// DeleteOwned deletes an attachment whose parent task is owned by ownerID
	DeleteOwned(ctx context.Context, ownerID, id uint64) error

	// FindByStoredName finds an attachment by its blob key, regardless of owner
	FindByStoredName(ctx context.Context, storedName string) (*models.Attachment, error)
}
