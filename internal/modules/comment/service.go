package comment

import (
	"context"
	"errors"
	"time"

	"nextassist/internal/domain"
	"nextassist/internal/modules/notify"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service appends and lists task comments. Comments are never edited
// or removed, so list order is creation order forever.
type Service struct {
	comments CommentRepositoryInterface
	tasks    TaskReader
	projects ProjectReader
	users    UserReader
	notifier NotificationSender
}

func NewService(
	comments CommentRepositoryInterface,
	tasks TaskReader,
	projects ProjectReader,
	users UserReader,
	notifier NotificationSender,
) *Service {
	return &Service{
		comments: comments,
		tasks:    tasks,
		projects: projects,
		users:    users,
		notifier: notifier,
	}
}

func (s *Service) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return s.comments.ListByTask(ctx, taskID)
}

func (s *Service) Create(ctx context.Context, authorID, taskID string, req CreateCommentRequest) (*domain.Comment, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	// Author name and photo are denormalized onto the comment row, the
	// way the portal renders comment threads.
	var authorName, authorPhoto string
	if author, uerr := s.users.GetByID(ctx, authorID); uerr == nil {
		authorName = author.FullName()
		authorPhoto = author.AvatarURL
	}

	c := &domain.Comment{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		UserID:    authorID,
		UserName:  authorName,
		UserPhoto: authorPhoto,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if project, perr := s.projects.GetByID(ctx, t.ProjectID); perr == nil {
			recipient := project.ManagerID
			if authorID == project.ManagerID {
				recipient = project.AssistantID
			}
			s.notifier.SendToUser(recipient, notify.NewCommentEvent(taskID, authorID, authorName))
		}
	}

	return c, nil
}
