package profile

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
	profileGroup := protected.Group("/profile")
	{
		profileGroup.GET("", h.GetProfile)
		profileGroup.PUT("", h.UpdateProfile)

		profileGroup.GET("/experiences", h.ListExperiences)
		profileGroup.POST("/experiences", h.AddExperience)
		profileGroup.PUT("/experiences/:id", h.UpdateExperience)
		profileGroup.DELETE("/experiences/:id", h.DeleteExperience)

		profileGroup.GET("/skills", h.ListSkills)
		profileGroup.POST("/skills", h.AddSkill)
		profileGroup.PUT("/skills/:id", h.UpdateSkill)
		profileGroup.DELETE("/skills/:id", h.DeleteSkill)

		profileGroup.GET("/courses", h.ListCourses)
	}

	protected.GET("/skills/catalog", h.ListAvailableSkills)
}

// RegisterRoleRoutes mirrors the profile page into a role-prefixed
// path space (/manager/profile, /assistant/profile).
func (h *Handler) RegisterRoleRoutes(g *gin.RouterGroup) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
}

func (h *Handler) GetProfile(c *gin.Context) {
	resp, err := h.service.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PROFILE_FAILED", "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) ListExperiences(c *gin.Context) {
	experiences, err := h.service.ListExperiences(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "EXPERIENCES_FAILED", "Failed to load experiences")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"experiences": experiences})
}

func (h *Handler) AddExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.AddExperience(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "EXPERIENCE_CREATE_FAILED", "Failed to add experience")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"experience": e})
}

func (h *Handler) UpdateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.UpdateExperience(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Experience not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "EXPERIENCE_UPDATE_FAILED", "Failed to update experience")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"experience": e})
}

func (h *Handler) DeleteExperience(c *gin.Context) {
	err := h.service.DeleteExperience(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Experience not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "EXPERIENCE_DELETE_FAILED", "Failed to delete experience")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Experience deleted"})
}

func (h *Handler) ListSkills(c *gin.Context) {
	skills, err := h.service.ListSkills(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SKILLS_FAILED", "Failed to load skills")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skills": skills})
}

func (h *Handler) AddSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	skill, err := h.service.AddSkill(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SKILL_CREATE_FAILED", "Failed to add skill")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"skill": skill})
}

func (h *Handler) UpdateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	skill, err := h.service.UpdateSkill(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Skill not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SKILL_UPDATE_FAILED", "Failed to update skill")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skill": skill})
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	err := h.service.DeleteSkill(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Skill not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SKILL_DELETE_FAILED", "Failed to delete skill")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Skill deleted"})
}

func (h *Handler) ListCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "COURSES_FAILED", "Failed to load courses")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

func (h *Handler) ListAvailableSkills(c *gin.Context) {
	catalog, err := h.service.ListAvailableSkills(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CATALOG_FAILED", "Failed to load skills catalog")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skills": catalog})
}
