package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yukikurage/task-tracker/internal/blobstore"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"gorm.io/gorm"
)

// TaskService handles task business logic. Every method is scoped to the
// calling owner; a task owned by someone else reads as missing.
type TaskService struct {
	taskRepo repository.TaskRepository
	blobs    blobstore.Store
	log      logrus.FieldLogger
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, blobs blobstore.Store, log logrus.FieldLogger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		blobs:    blobs,
		log:      log,
	}
}

// Field is one member of a sparse patch. Set reports whether the field was
// supplied at all; a supplied field with a nil Value is an explicit null.
type Field[T any] struct {
	Set   bool
	Value *T
}

// Value returns a supplied field holding v.
func Value[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Null returns a supplied field holding an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	OwnerID     uint64
	Title       string
	Description string
	Status      models.TaskStatus
	DueDate     *time.Time
}

// UpdateTaskInput is a sparse patch; fields left unset are not written.
type UpdateTaskInput struct {
	Title       Field[string]
	Description Field[string]
	Status      Field[models.TaskStatus]
	DueDate     Field[time.Time]
}

// ListTasks returns the owner's tasks ordered by due date, undated last.
func (s *TaskService) ListTasks(ctx context.Context, ownerID uint64, status *models.TaskStatus) ([]models.Task, error) {
	if ownerID == 0 {
		return nil, ErrUnauthorized
	}
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}

	tasks, err := s.taskRepo.ListOwned(ctx, repository.TaskFilter{OwnerID: ownerID, Status: status})
	if err != nil {
		return nil, storeFailure("list tasks", err)
	}
	return tasks, nil
}

// GetTask returns an owned task with its attachments
func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID uint64) (*models.Task, error) {
	if ownerID == 0 {
		return nil, ErrUnauthorized
	}

	task, err := s.taskRepo.FindOwned(ctx, ownerID, taskID)
	if err != nil {
		return nil, taskLookupError("find task", err)
	}
	return task, nil
}

// CreateTask creates a new task with validation
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if input.OwnerID == 0 {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		DueDate:     input.DueDate,
		OwnerID:     input.OwnerID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, storeFailure("create task", err)
	}

	task.Attachments = []models.Attachment{}
	return task, nil
}

// UpdateTask applies a sparse patch to an owned task and returns the stored row
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	if ownerID == 0 {
		return nil, ErrUnauthorized
	}

	updates, err := input.columns()
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.UpdateOwned(ctx, ownerID, taskID, updates)
	if err != nil {
		return nil, taskLookupError("update task", err)
	}
	return task, nil
}

// columns validates the patch and converts it to column updates.
func (in UpdateTaskInput) columns() (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if in.Title.Set {
		if in.Title.Value == nil || strings.TrimSpace(*in.Title.Value) == "" {
			return nil, ErrTitleRequired
		}
		updates["title"] = *in.Title.Value
	}
	if in.Description.Set {
		description := ""
		if in.Description.Value != nil {
			description = *in.Description.Value
		}
		updates["description"] = description
	}
	if in.Status.Set {
		if in.Status.Value == nil || !in.Status.Value.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = string(*in.Status.Value)
	}
	if in.DueDate.Set {
		if in.DueDate.Value == nil {
			updates["due_date"] = nil
		} else {
			updates["due_date"] = *in.DueDate.Value
		}
	}

	return updates, nil
}

// DeleteTask removes the task's blobs, then its attachment rows and the task
// itself. Blob removal is best-effort: a failure is logged and does not stop
// the rows from being deleted.
func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	if ownerID == 0 {
		return ErrUnauthorized
	}

	task, err := s.taskRepo.FindOwned(ctx, ownerID, taskID)
	if err != nil {
		return taskLookupError("find task", err)
	}

	for _, attachment := range task.Attachments {
		if err := s.blobs.Delete(ctx, attachment.StoredName); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"task_id":       task.ID,
				"attachment_id": attachment.ID,
				"key":           attachment.StoredName,
			}).Warn("failed to delete blob")
		}
	}

	if err := s.taskRepo.DeleteOwned(ctx, ownerID, taskID); err != nil {
		return taskLookupError("delete task", err)
	}
	return nil
}

func taskLookupError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTaskNotFound
	}
	return storeFailure(op, err)
}
