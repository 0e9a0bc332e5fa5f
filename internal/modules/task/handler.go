package task

import (
	"errors"
	"net/http"

	"nextassist/internal/domain"
	"nextassist/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/projects/:id/tasks", h.ListByProject)

	taskGroup := protected.Group("/tasks")
	{
		taskGroup.POST("", h.Create)
		taskGroup.PATCH("/:id", h.Update)
		taskGroup.DELETE("/:id", h.Delete)
		taskGroup.POST("/:id/accept", h.Accept)
		taskGroup.POST("/:id/decline", h.Decline)
		taskGroup.POST("/:id/complete", h.Complete)
	}
}

func (h *Handler) ListByProject(c *gin.Context) {
	tasks, err := h.service.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "TASKS_FAILED", "Failed to load tasks")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "TASK_CREATE_FAILED", "Failed to create task")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"task": t})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Task not found")
		case errors.Is(err, ErrEmptyPatch):
			response.Error(c, http.StatusBadRequest, "EMPTY_PATCH", "No fields to update")
		default:
			response.Error(c, http.StatusInternalServerError, "TASK_UPDATE_FAILED", "Failed to update task")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"task": t})
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Task not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "TASK_DELETE_FAILED", "Failed to delete task")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Task deleted"})
}

func (h *Handler) Accept(c *gin.Context) {
	t, err := h.service.Accept(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	h.respondStatusChange(c, t, err)
}

func (h *Handler) Decline(c *gin.Context) {
	t, err := h.service.Decline(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	h.respondStatusChange(c, t, err)
}

func (h *Handler) Complete(c *gin.Context) {
	t, err := h.service.Complete(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	h.respondStatusChange(c, t, err)
}

func (h *Handler) respondStatusChange(c *gin.Context, t *domain.Task, err error) {
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Task not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "TASK_UPDATE_FAILED", "Failed to update task")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"task": t})
}
