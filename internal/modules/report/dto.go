package report

type CreateReportRequest struct {
	ProjectID    string   `json:"project_id" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	Summary      string   `json:"summary" binding:"required"`
	Achievements []string `json:"achievements"`
	Challenges   []string `json:"challenges"`
	NextDayPlans []string `json:"next_day_plans"`
}
