package fixtures

import (
	"time"

	"nextassist/internal/domain"
)

// Demo dataset standing in for a real backend. Shaped exactly like the
// domain model: two paired users, one shared project with tasks,
// comments and daily reports, profile collections for the assistant,
// billing aggregates for the manager, and the learning catalog.

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339, v)
	return t
}

func timePtr(v string) *time.Time {
	t := parseTime(v)
	return &t
}

func Users() []domain.User {
	return []domain.User{
		{
			ID:               "1",
			Email:            "alex@example.com",
			FirstName:        "Alex",
			LastName:         "Morrison",
			Role:             domain.RoleAssistant,
			AvatarURL:        "https://i.pravatar.cc/150?img=1",
			Bio:              "Full-stack developer with 5+ years of experience building web applications. Passionate about intuitive interfaces and hard problems.",
			TaxID:            "1234567890",
			HasAcceptedOffer: true,
			CreatedAt:        parseTime("2024-01-01T00:00:00Z"),
		},
		{
			ID:               "2",
			Email:            "elena@example.com",
			FirstName:        "Elena",
			LastName:         "Peterson",
			Role:             domain.RoleManager,
			Company:          "Acme Ltd",
			AvatarURL:        "https://i.pravatar.cc/150?img=2",
			Bio:              "Sales manager helping companies grow revenue and win new clients.",
			TaxID:            "1234567890",
			HasAcceptedOffer: true,
			CreatedAt:        parseTime("2024-01-01T00:00:00Z"),
		},
	}
}

func Projects() []domain.Project {
	return []domain.Project{
		{
			ID:                   "1",
			AssistantTitle:       "Elena Peterson",
			ManagerTitle:         "Alex Morrison",
			AssistantDescription: "Sales manager helping companies grow revenue and win new clients.",
			ManagerDescription:   "Full-stack developer with 5+ years of experience building web applications.",
			ManagerID:            "2",
			AssistantID:          "1",
			ManagerName:          "Elena Peterson",
		},
	}
}

func Tasks() []domain.Task {
	return []domain.Task{
		{
			ID:          "1",
			ProjectID:   "1",
			Title:       "Design the product page layout",
			Description: "Create a responsive layout for the product detail page following the new design system.",
			Priority:    domain.PriorityHigh,
			Deadline:    timePtr("2023-12-15T00:00:00Z"),
			Status:      domain.TaskInProgress,
			CreatedBy:   "2",
			CreatedAt:   parseTime("2023-10-05T00:00:00Z"),
		},
		{
			ID:          "2",
			ProjectID:   "1",
			Title:       "Implement the shopping cart",
			Description: "Add cart functionality with add/remove items and quantity updates.",
			Priority:    domain.PriorityMedium,
			Deadline:    timePtr("2023-12-20T00:00:00Z"),
			Status:      domain.TaskNew,
			CreatedBy:   "2",
			CreatedAt:   parseTime("2023-10-10T00:00:00Z"),
		},
		{
			ID:          "3",
			ProjectID:   "1",
			Title:       "Connect the payment provider",
			Description: "Wire up the payment provider so cart checkout can charge customers.",
			Priority:    domain.PriorityMedium,
			Deadline:    timePtr("2026-12-20T00:00:00Z"),
			Status:      domain.TaskNew,
			CreatedBy:   "1",
			CreatedAt:   parseTime("2023-10-10T00:00:00Z"),
		},
	}
}

func Comments() []domain.Comment {
	return []domain.Comment{
		{
			ID:        "1",
			TaskID:    "1",
			UserID:    "2",
			UserName:  "Elena Peterson",
			UserPhoto: "https://i.pravatar.cc/150?img=2",
			Content:   "Please make sure the layout matches the Figma design exactly. Pay special attention to the spacing around product images.",
			CreatedAt: parseTime("2023-10-06T09:30:00Z"),
		},
		{
			ID:        "2",
			TaskID:    "1",
			UserID:    "1",
			UserName:  "Alex Morrison",
			UserPhoto: "https://i.pravatar.cc/150?img=1",
			Content:   "I started the implementation and have a question about tablet breakpoints. Should images stack in a column or stay in a grid?",
			CreatedAt: parseTime("2023-10-07T14:20:00Z"),
		},
	}
}

func Reports() []domain.DailyReport {
	return []domain.DailyReport{
		{
			ID:           "1",
			ProjectID:    "1",
			Date:         "2024-03-15",
			Summary:      "Finished the core feature work. Ran the payment module test pass.",
			Achievements: []string{"Payment module finished", "Test pass completed"},
			Challenges:   []string{"Payment provider integration was tricky"},
			NextDayPlans: []string{"Start on the delivery module"},
			CreatedBy:    "1",
			CreatedAt:    parseTime("2024-03-15T10:30:00Z"),
		},
		{
			ID:           "2",
			ProjectID:    "1",
			Date:         "2024-03-14",
			Summary:      "Met with the client. Agreed on changes to the home page design.",
			Achievements: []string{"Home page design approved"},
			Challenges:   []string{"Existing components need rework"},
			NextDayPlans: []string{"Start implementing the updated design"},
			CreatedBy:    "1",
			CreatedAt:    parseTime("2024-03-14T16:45:00Z"),
		},
		{
			ID:           "3",
			ProjectID:    "1",
			Date:         "2024-03-13",
			Summary:      "Tested and debugged the payment module.",
			Achievements: []string{"Payment module tested and debugged"},
			Challenges:   []string{"Payment provider integration was tricky"},
			NextDayPlans: []string{"Start on the delivery module"},
			CreatedBy:    "1",
			CreatedAt:    parseTime("2024-03-13T12:30:00Z"),
		},
	}
}

func Experiences() []domain.WorkExperience {
	end := "2020-05-30"
	end2 := "2018-03-01"
	return []domain.WorkExperience{
		{
			ID:          "1",
			UserID:      "1",
			Company:     "TechCorp Solutions",
			Position:    "Lead Developer",
			StartDate:   "2020-06-01",
			EndDate:     nil,
			Description: "Leading a team of five developers building enterprise applications with React, Node.js and AWS.",
		},
		{
			ID:          "2",
			UserID:      "1",
			Company:     "WebInnovate",
			Position:    "Frontend Developer",
			StartDate:   "2018-03-15",
			EndDate:     &end,
			Description: "Built responsive user interfaces with React and Redux, working closely with UX designers.",
		},
		{
			ID:          "3",
			UserID:      "1",
			Company:     "Digital Startup",
			Position:    "Junior Developer",
			StartDate:   "2016-09-01",
			EndDate:     &end2,
			Description: "Developed and maintained web applications with JavaScript, HTML and CSS.",
		},
	}
}

func Skills() []domain.Skill {
	return []domain.Skill{
		{ID: "1", UserID: "1", Name: "JavaScript", Category: "Frontend"},
		{ID: "2", UserID: "1", Name: "React", Category: "Frontend"},
		{ID: "3", UserID: "1", Name: "TypeScript", Category: "Frontend"},
		{ID: "4", UserID: "1", Name: "CSS/SCSS", Category: "Frontend"},
		{ID: "5", UserID: "1", Name: "Node.js", Category: "Backend"},
		{ID: "6", UserID: "1", Name: "Express", Category: "Backend"},
		{ID: "7", UserID: "1", Name: "MongoDB", Category: "Database"},
		{ID: "8", UserID: "1", Name: "PostgreSQL", Category: "Database"},
		{ID: "9", UserID: "1", Name: "AWS", Category: "DevOps"},
		{ID: "10", UserID: "1", Name: "Docker", Category: "DevOps"},
	}
}

func AvailableSkills() []domain.AvailableSkill {
	return []domain.AvailableSkill{
		{Name: "JavaScript", Category: "Frontend"},
		{Name: "React", Category: "Frontend"},
		{Name: "TypeScript", Category: "Frontend"},
		{Name: "CSS/SCSS", Category: "Frontend"},
		{Name: "HTML5", Category: "Frontend"},
		{Name: "Vue.js", Category: "Frontend"},
		{Name: "Angular", Category: "Frontend"},
		{Name: "Node.js", Category: "Backend"},
		{Name: "Express", Category: "Backend"},
		{Name: "Python", Category: "Backend"},
		{Name: "Django", Category: "Backend"},
		{Name: "Flask", Category: "Backend"},
		{Name: "MongoDB", Category: "Database"},
		{Name: "PostgreSQL", Category: "Database"},
		{Name: "MySQL", Category: "Database"},
		{Name: "Redis", Category: "Database"},
		{Name: "AWS", Category: "DevOps"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "Kubernetes", Category: "DevOps"},
		{Name: "CI/CD", Category: "DevOps"},
		{Name: "Figma", Category: "UI/UX"},
		{Name: "Adobe XD", Category: "UI/UX"},
		{Name: "Sketch", Category: "UI/UX"},
		{Name: "User Research", Category: "UI/UX"},
	}
}

func Courses() []domain.Course {
	return []domain.Course{
		{ID: "1", UserID: "1", Title: "Advanced React Patterns", CompletedDate: "2023-04-15", CertificateURL: "https://example.com/cert1"},
		{ID: "2", UserID: "1", Title: "TypeScript Masterclass", CompletedDate: "2022-11-20", CertificateURL: "https://example.com/cert2"},
		{ID: "3", UserID: "1", Title: "AWS Certified Developer", CompletedDate: "2022-06-10", CertificateURL: "https://example.com/cert3"},
	}
}

func Balance() domain.BalanceInfo {
	return domain.BalanceInfo{
		Total:          250.00,
		NextChargeDate: "2024-06-15",
		AssistantCharges: []domain.AssistantCharge{
			{
				AssistantID:     "1",
				AssistantName:   "Alex Morrison",
				Amount:          29.99,
				NextPaymentDate: "2024-06-15",
			},
		},
	}
}

func Transactions() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:          "1",
			UserID:      "2",
			Type:        domain.TransactionCharge,
			Description: "Monthly assistant subscription",
			Amount:      29.99,
			Date:        "2024-05-15",
			ReceiptURL:  "https://example.com/receipt1",
		},
		{
			ID:          "2",
			UserID:      "2",
			Type:        domain.TransactionPayment,
			Description: "Balance top-up",
			Amount:      100.00,
			Date:        "2024-05-01",
		},
		{
			ID:          "3",
			UserID:      "2",
			Type:        domain.TransactionCharge,
			Description: "Monthly assistant subscription",
			Amount:      29.99,
			Date:        "2024-04-15",
			ReceiptURL:  "https://example.com/receipt2",
		},
	}
}

func LearningModules() []domain.LearningModule {
	return []domain.LearningModule{
		{
			ID:          "m1",
			Title:       "Working with Assistants",
			Description: "Learn the basics of working with assistants and what they can do for you.",
			Duration:    "2 hours",
			Progress:    75,
			Lessons: []domain.Lesson{
				{
					ID:          "l1",
					ModuleID:    "m1",
					Title:       "Introduction to Assistants",
					Description: "What assistants are and how they can help with your work.",
					Completed:   true,
					Content:     "Lesson content...",
					Duration:    "30 minutes",
				},
				{
					ID:          "l2",
					ModuleID:    "m1",
					Title:       "Effective Communication",
					Description: "How to phrase requests to get the best results.",
					Completed:   true,
					Content:     "Lesson content...",
					Duration:    "45 minutes",
				},
			},
		},
		{
			ID:          "m2",
			Title:       "Copywriting Deep Dive",
			Description: "Not just a course, a full immersion into the world of copywriting.",
			Duration:    "2 hours",
			Progress:    50,
			Lessons: []domain.Lesson{
				{
					ID:          "l1",
					ModuleID:    "m2",
					Title:       "Introduction to Copywriting",
					Description: "What copywriting is and how it can help with your work.",
					Completed:   false,
					Content:     "Lesson content...",
					Duration:    "30 minutes",
				},
			},
		},
	}
}
