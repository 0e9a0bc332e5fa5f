package domain

type WorkExperience struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	UserID      string  `json:"user_id" gorm:"index"`
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description" gorm:"type:text"`
}

type Skill struct {
	ID       string `json:"id" gorm:"primaryKey"`
	UserID   string `json:"user_id" gorm:"index"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// AvailableSkill is a catalog entry users pick skills from.
type AvailableSkill struct {
	Name     string `json:"name" gorm:"primaryKey"`
	Category string `json:"category"`
}

type Course struct {
	ID             string `json:"id" gorm:"primaryKey"`
	UserID         string `json:"user_id" gorm:"index"`
	Title          string `json:"title"`
	CompletedDate  string `json:"completed_date"`
	CertificateURL string `json:"certificate,omitempty"`
}
