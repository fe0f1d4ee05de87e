package interfaces

import (
	"context"
	"impressao_xpto/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// CreateBatch persists the provider fan-out as a single batch append.
// MarkRead is the only mutation after creation.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	CreateBatch(ctx context.Context, ns []entities.Notification) error
	ListByRecipientID(ctx context.Context, recipientID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
}
