package dto

import (
	"bytes"
	"encoding/json"
	"time"

	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/services"
)

// RegisterRequest is the body of register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of login. Missing fields are checked against the
// store like any other credentials so every failure looks the same.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTaskRequest is the body of task creation.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

// ToInput converts the request into a service input for ownerID.
func (r CreateTaskRequest) ToInput(ownerID uint64) (services.CreateTaskInput, error) {
	input := services.CreateTaskInput{
		OwnerID: ownerID,
		Title:   r.Title,
	}
	if r.Description != nil {
		input.Description = *r.Description
	}
	if r.Status != nil {
		input.Status = models.TaskStatus(*r.Status)
	}
	if r.DueDate != nil {
		due, err := ParseDueDate(*r.DueDate)
		if err != nil {
			return input, err
		}
		input.DueDate = due
	}
	return input, nil
}

// ParseTaskPatch decodes a JSON object into a sparse patch. Keys that are
// absent stay unset; keys present with null become explicit nulls.
func ParseTaskPatch(body []byte) (services.UpdateTaskInput, error) {
	var input services.UpdateTaskInput

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return input, apierrors.ErrInvalidInput
	}

	var err error
	if input.Title, err = stringField(raw, "title"); err != nil {
		return input, err
	}
	if input.Description, err = stringField(raw, "description"); err != nil {
		return input, err
	}

	status, err := stringField(raw, "status")
	if err != nil {
		return input, err
	}
	input.Status = services.Field[models.TaskStatus]{Set: status.Set}
	if status.Value != nil {
		s := models.TaskStatus(*status.Value)
		input.Status.Value = &s
	}

	due, err := stringField(raw, "due_date")
	if err != nil {
		return input, err
	}
	if input.DueDate, err = DueDateField(due); err != nil {
		return input, err
	}

	return input, nil
}

// DueDateField converts a string patch field into a date patch field. An
// empty string clears the date like an explicit null does.
func DueDateField(field services.Field[string]) (services.Field[time.Time], error) {
	if !field.Set {
		return services.Field[time.Time]{}, nil
	}
	if field.Value == nil {
		return services.Null[time.Time](), nil
	}

	due, err := ParseDueDate(*field.Value)
	if err != nil {
		return services.Field[time.Time]{}, err
	}
	return services.Field[time.Time]{Set: true, Value: due}, nil
}

func stringField(raw map[string]json.RawMessage, key string) (services.Field[string], error) {
	value, ok := raw[key]
	if !ok {
		return services.Field[string]{}, nil
	}
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return services.Null[string](), nil
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return services.Field[string]{}, apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, key+" must be a string")
	}
	return services.Value(s), nil
}
