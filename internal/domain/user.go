package domain

import "time"

type UserRole string

const (
	RoleManager   UserRole = "manager"
	RoleAssistant UserRole = "assistant"
)

type User struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Email            string    `json:"email" validate:"required,email"`
	PasswordHash     string    `json:"-"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Role             UserRole  `json:"role"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	Company          string    `json:"company,omitempty"`
	Bio              string    `json:"bio,omitempty" gorm:"type:text"`
	TaxID            string    `json:"tax_id,omitempty"`
	HasAcceptedOffer bool      `json:"has_accepted_offer"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
