package domain

import "time"

// Project pairs one manager with one assistant. Each side sees its own
// title/description. Projects are seeded only; there is no create or
// delete operation on them.
type Project struct {
	ID                   string `json:"id" gorm:"primaryKey"`
	ManagerTitle         string `json:"manager_title"`
	AssistantTitle       string `json:"assistant_title"`
	ManagerDescription   string `json:"manager_description" gorm:"type:text"`
	AssistantDescription string `json:"assistant_description" gorm:"type:text"`
	ManagerID            string `json:"manager_id"`
	AssistantID          string `json:"assistant_id"`
	ManagerName          string `json:"manager_name"`

	Tasks   []Task        `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	Reports []DailyReport `json:"reports,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

type DailyReport struct {
	Seq          int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	ID           string    `json:"id" gorm:"uniqueIndex"`
	ProjectID    string    `json:"project_id" gorm:"index"`
	Date         string    `json:"date"`
	Summary      string    `json:"summary" gorm:"type:text"`
	Achievements []string  `json:"achievements" gorm:"serializer:json"`
	Challenges   []string  `json:"challenges" gorm:"serializer:json"`
	NextDayPlans []string  `json:"next_day_plans" gorm:"serializer:json"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}
