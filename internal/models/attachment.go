package models

import "time"

// Attachment is the metadata of one uploaded file. The bytes live in the
// blob store under StoredName.
type Attachment struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	TaskID       uint64    `gorm:"not null;index" json:"task_id"`
	StoredName   string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"stored_name"`
	OriginalName string    `gorm:"type:varchar(255);not null" json:"original_name"`
	MimeType     string    `gorm:"type:varchar(255);not null" json:"mime_type"`
	Size         int64     `gorm:"not null" json:"size"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"-"`
}
