package project

import "nextassist/internal/domain"

// ProjectView renders the side of the project matching the viewer's
// role: managers and assistants see different titles and descriptions
// for the same pairing.
type ProjectView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ManagerID   string `json:"manager_id"`
	AssistantID string `json:"assistant_id"`
	ManagerName string `json:"manager_name"`
}

type ProjectDetail struct {
	ProjectView
	Tasks   []domain.Task        `json:"tasks"`
	Reports []domain.DailyReport `json:"reports"`
}

type TaskCounts struct {
	Total      int64 `json:"total"`
	New        int64 `json:"new"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Accepted   int64 `json:"accepted"`
	Declined   int64 `json:"declined"`
}

type DashboardEntry struct {
	ProjectView
	TaskCounts TaskCounts `json:"task_counts"`
}

func viewFor(p *domain.Project, role domain.UserRole) ProjectView {
	view := ProjectView{
		ID:          p.ID,
		Title:       p.ManagerTitle,
		Description: p.ManagerDescription,
		ManagerID:   p.ManagerID,
		AssistantID: p.AssistantID,
		ManagerName: p.ManagerName,
	}
	if role == domain.RoleAssistant {
		view.Title = p.AssistantTitle
		view.Description = p.AssistantDescription
	}
	return view
}
