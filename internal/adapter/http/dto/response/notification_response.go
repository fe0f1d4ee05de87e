package response

import (
	"impressao_xpto/internal/domain/entities"
	"time"
)

type NotificationResponse struct {
	ID            string    `json:"id"`
	RecipientID   string    `json:"recipient_id"`
	RecipientKind string    `json:"recipient_kind"`
	QuoteID       string    `json:"quote_id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientKind: string(n.RecipientKind),
		QuoteID:       n.QuoteID,
		Type:          string(n.Type),
		Title:         n.Title,
		Message:       n.Message,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}
