package project

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
	projectGroup := protected.Group("/projects")
	{
		projectGroup.GET("", h.List)
		projectGroup.GET("/:id", h.Get)
	}
}

// Role-prefixed aliases mirror the portal's /manager and /assistant
// path spaces. The underlying queries are identical; the gate on the
// group is what differs.
func (h *Handler) RegisterManagerRoutes(manager *gin.RouterGroup) {
	manager.GET("/dashboard", h.Dashboard)
	manager.GET("/dashboard/:id", h.Get)
}

func (h *Handler) RegisterAssistantRoutes(assistant *gin.RouterGroup) {
	assistant.GET("/projects", h.List)
	assistant.GET("/projects/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	role := domain.UserRole(c.GetString("role"))

	projects, err := h.service.ListForUser(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PROJECTS_FAILED", "Failed to load projects")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) Get(c *gin.Context) {
	role := domain.UserRole(c.GetString("role"))

	detail, err := h.service.GetByID(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PROJECT_FAILED", "Failed to load project")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": detail})
}

func (h *Handler) Dashboard(c *gin.Context) {
	userID := c.GetString("user_id")

	entries, err := h.service.Dashboard(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DASHBOARD_FAILED", "Failed to load dashboard")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"projects": entries})
}
