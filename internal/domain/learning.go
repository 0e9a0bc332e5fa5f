package domain

type LearningModule struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Duration    string `json:"duration"`
	Progress    int    `json:"progress"`

	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:ModuleID;references:ID"`
}

type Lesson struct {
	Seq         int64  `json:"-" gorm:"primaryKey;autoIncrement"`
	ID          string `json:"id"`
	ModuleID    string `json:"module_id" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Completed   bool   `json:"completed"`
	Content     string `json:"content" gorm:"type:text"`
	Duration    string `json:"duration"`
}
