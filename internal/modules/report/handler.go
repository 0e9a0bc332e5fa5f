package report

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
	protected.GET("/projects/:id/reports", h.ListByProject)
	protected.POST("/reports", h.Create)
}

func (h *Handler) ListByProject(c *gin.Context) {
	reports, err := h.service.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REPORTS_FAILED", "Failed to load reports")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reports": reports})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	report, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REPORT_CREATE_FAILED", "Failed to save report")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"report": report})
}
