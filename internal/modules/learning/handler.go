package learning

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
	learningGroup := protected.Group("/learning")
	{
		learningGroup.GET("/modules", h.List)
		learningGroup.GET("/modules/:id", h.Get)
	}
}

// RegisterRoleRoutes mirrors the catalog into a role-prefixed path
// space (/manager/courses, /assistant/courses).
func (h *Handler) RegisterRoleRoutes(g *gin.RouterGroup) {
	g.GET("/courses", h.List)
	g.GET("/courses/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	modules, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "MODULES_FAILED", "Failed to load learning modules")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"modules": modules})
}

func (h *Handler) Get(c *gin.Context) {
	m, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Learning module not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "MODULE_FAILED", "Failed to load learning module")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"module": m})
}
