package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/dto"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the caller's tasks, optionally filtered by ?status=
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var status *models.TaskStatus
	if value, ok := c.GetQuery("status"); ok && value != "" {
		s := models.TaskStatus(value)
		status = &s
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), userID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	task, err := h.taskService.GetTask(c.Request.Context(), userID, middleware.GetIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, apierrors.ErrInvalidInput)
		return
	}

	input, err := req.ToInput(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a sparse patch: only keys present in the body are written
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrInvalidInput)
		return
	}

	input, err := dto.ParseTaskPatch(body)
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, middleware.GetIDParam(c, "id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task together with its files
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, middleware.GetIDParam(c, "id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
