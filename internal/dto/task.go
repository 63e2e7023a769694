package dto

import (
	"time"

	"github.com/yukikurage/task-tracker/internal/auth"
	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// FileDTO represents an attachment in API responses
type FileDTO struct {
	ID   uint64 `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	DueDate     *string           `json:"due_date"`
	CreatedAt   time.Time         `json:"created_at"`
	Files       []FileDTO         `json:"files"`
}

// TaskListResponse wraps a list of tasks
type TaskListResponse struct {
	Tasks []TaskDTO `json:"tasks"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// IdentityToUserDTO converts a token identity to UserDTO
func IdentityToUserDTO(identity auth.Identity) UserDTO {
	return UserDTO{
		ID:       identity.ID,
		Username: identity.Username,
	}
}

// FileURL is the public path a stored blob is served from.
func FileURL(storedName string) string {
	return constants.PublicBlobPath + storedName
}

// ToFileDTO converts an Attachment model to FileDTO
func ToFileDTO(attachment models.Attachment) FileDTO {
	return FileDTO{
		ID:   attachment.ID,
		URL:  FileURL(attachment.StoredName),
		Name: attachment.OriginalName,
		Mime: attachment.MimeType,
		Size: attachment.Size,
	}
}

// ToFileDTOs converts attachments, never returning nil
func ToFileDTOs(attachments []models.Attachment) []FileDTO {
	files := make([]FileDTO, len(attachments))
	for i, attachment := range attachments {
		files[i] = ToFileDTO(attachment)
	}
	return files
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		Files:       ToFileDTOs(task.Attachments),
	}

	if task.DueDate != nil {
		due := FormatDueDate(*task.DueDate)
		dto.DueDate = &due
	}

	return dto
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return TaskListResponse{Tasks: items}
}
