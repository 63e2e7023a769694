package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text;not null;default:''" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	OwnerID     uint64     `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`

	// Relations
	Owner       User         `gorm:"foreignKey:OwnerID" json:"-"`
	Attachments []Attachment `gorm:"foreignKey:TaskID" json:"attachments"`
}
