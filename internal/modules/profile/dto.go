package profile

import "nextassist/internal/domain"

type UpdateProfileRequest struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	AvatarURL        *string `json:"avatar_url"`
	Company          *string `json:"company"`
	Bio              *string `json:"bio"`
	TaxID            *string `json:"tax_id"`
	HasAcceptedOffer *bool   `json:"has_accepted_offer"`
}

type ExperienceRequest struct {
	Company     string  `json:"company" binding:"required"`
	Position    string  `json:"position" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
}

type SkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// ProfileResponse is the full profile screen payload.
type ProfileResponse struct {
	User        *domain.User            `json:"user"`
	Experiences []domain.WorkExperience `json:"experiences"`
	Skills      []domain.Skill          `json:"skills"`
}
