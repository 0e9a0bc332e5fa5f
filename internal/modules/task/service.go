package task

import (
	"context"
	"errors"
	"time"

	"nextassist/internal/domain"
	"nextassist/internal/modules/notify"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns the task mutations. Status transitions carry no guard:
// whoever calls accept, decline or complete decides the outcome.
type Service struct {
	tasks    TaskRepositoryInterface
	projects ProjectReader
	notifier NotificationSender
}

func NewService(tasks TaskRepositoryInterface, projects ProjectReader, notifier NotificationSender) *Service {
	return &Service{tasks: tasks, projects: projects, notifier: notifier}
}

func (s *Service) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *Service) Create(ctx context.Context, actorID string, req CreateTaskRequest) (*domain.Task, error) {
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	t := &domain.Task{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Deadline:    req.Deadline,
		Status:      domain.TaskNew,
		CreatedBy:   actorID,
		CreatedAt:   time.Now(),
	}

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}

	s.notifyCounterpart(project, actorID, notify.NewTaskCreatedEvent(project.ID, t.ID, t.Title, actorID))
	return t, nil
}

func (s *Service) Update(ctx context.Context, actorID, taskID string, req UpdateTaskRequest) (*domain.Task, error) {
	patch := req.toPatch()
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}
	return s.patch(ctx, actorID, taskID, patch)
}

func (s *Service) Delete(ctx context.Context, actorID, taskID string) error {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	removed, err := s.tasks.Delete(ctx, taskID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}

	if project, perr := s.projects.GetByID(ctx, t.ProjectID); perr == nil {
		s.notifyCounterpart(project, actorID, notify.NewTaskDeletedEvent(t.ProjectID, taskID, actorID))
	}
	return nil
}

func (s *Service) Accept(ctx context.Context, actorID, taskID string) (*domain.Task, error) {
	return s.setStatus(ctx, actorID, taskID, domain.TaskAccepted)
}

func (s *Service) Decline(ctx context.Context, actorID, taskID string) (*domain.Task, error) {
	return s.setStatus(ctx, actorID, taskID, domain.TaskDeclined)
}

// Complete sets the status and stamps the completion time.
func (s *Service) Complete(ctx context.Context, actorID, taskID string) (*domain.Task, error) {
	now := time.Now()
	status := domain.TaskCompleted
	return s.patch(ctx, actorID, taskID, domain.TaskPatch{Status: &status, CompletedAt: &now})
}

func (s *Service) setStatus(ctx context.Context, actorID, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	return s.patch(ctx, actorID, taskID, domain.TaskPatch{Status: &status})
}

func (s *Service) patch(ctx context.Context, actorID, taskID string, patch domain.TaskPatch) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	patch.Apply(t)
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if project, perr := s.projects.GetByID(ctx, t.ProjectID); perr == nil {
			s.notifyCounterpart(project, actorID, notify.NewTaskStatusEvent(t.ProjectID, t.ID, string(t.Status), actorID))
		}
	}
	return t, nil
}

// notifyCounterpart pushes the event to the other party of the
// project pairing.
func (s *Service) notifyCounterpart(project *domain.Project, actorID string, event notify.Event) {
	if s.notifier == nil {
		return
	}
	recipient := project.ManagerID
	if actorID == project.ManagerID {
		recipient = project.AssistantID
	}
	s.notifier.SendToUser(recipient, event)
}
