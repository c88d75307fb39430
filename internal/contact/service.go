package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/james-eo/portfolio/internal/shared/telemetry"
)

const (
	maxSubjectLen = 200
	maxBodyLen    = 5000
)

// Service stores messages and fires best-effort notifications. A
// notification failure never fails the submission.
type Service struct {
	Repo     Repo
	Notifier Notifier
}

func NewService(repo Repo, notifier Notifier) *Service {
	return &Service{Repo: repo, Notifier: notifier}
}

func (s *Service) Submit(ctx context.Context, m Message) (Message, error) {
	if err := validate(m); err != nil {
		return Message{}, err
	}
	m.ID = uuid.NewString()
	m.Read = false
	m.CreatedAt = time.Now().UTC()
	if err := s.Repo.Create(ctx, m); err != nil {
		return Message{}, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, m); err != nil {
			telemetry.Warn("contact.notify_failed", map[string]any{
				"message_id": m.ID,
				"error":      err.Error(),
			})
		}
	}
	return m, nil
}

func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.Repo.List(ctx)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validate(m Message) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(m.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(m.Subject) > maxSubjectLen {
		return fmt.Errorf("%w: subject exceeds %d characters", ErrInvalidInput, maxSubjectLen)
	}
	if len(m.Body) > maxBodyLen {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, maxBodyLen)
	}
	return nil
}
