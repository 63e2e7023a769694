package database

import (
	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/gorm"
)

// OwnedBy restricts a tasks query to rows owned by ownerID.
func OwnedBy(ownerID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.owner_id = ?", ownerID)
	}
}

// WithStatus filters tasks by status when one is given.
func WithStatus(status *models.TaskStatus) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == nil {
			return db
		}
		return db.Where("tasks.status = ?", *status)
	}
}

// DueDateOrder sorts by due date ascending with undated tasks last.
func DueDateOrder(db *gorm.DB) *gorm.DB {
	return db.Order("CASE WHEN tasks.due_date IS NULL THEN 1 ELSE 0 END, tasks.due_date ASC, tasks.id ASC")
}
