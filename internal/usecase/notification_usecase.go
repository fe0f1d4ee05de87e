package usecase

import (
	"context"
	"errors"
	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase/interfaces"
	"strings"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrInvalidRecipientID    = errors.New("invalid recipient id")
)

// INotificationUseCase covers the polling-based notification reads and the
// read-flag toggle. Creation happens inside the quote and proposal flows.

type INotificationUseCase interface {
	ListByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) ListByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	recipientID = strings.TrimSpace(recipientID)
	if recipientID == "" {
		return nil, ErrInvalidRecipientID
	}
	return u.repo.ListByRecipientID(ctx, recipientID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
