package comment

import (
	"errors"
	"net/http"

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
	protected.GET("/tasks/:id/comments", h.ListByTask)
	protected.POST("/tasks/:id/comments", h.Create)
}

func (h *Handler) ListByTask(c *gin.Context) {
	comments, err := h.service.ListByTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Task not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "COMMENTS_FAILED", "Failed to load comments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"comments": comments})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Task not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "COMMENT_CREATE_FAILED", "Failed to add comment")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"comment": created})
}
