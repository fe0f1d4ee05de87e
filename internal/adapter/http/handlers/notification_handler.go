package handlers

import (
	"errors"
	"net/http"

	response "impressao_xpto/internal/adapter/http/dto/response"
	"impressao_xpto/internal/usecase"
	"impressao_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles the polling-based notification endpoints.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// ListNotifications returns every notification for a recipient, unread first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	recipientID := c.Query("recipient_id")

	notifications, err := h.usecase.ListByRecipient(c.Request.Context(), recipientID)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	n, err := h.usecase.MarkRead(c.Request.Context(), id)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID), errors.Is(err, usecase.ErrInvalidRecipientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notificação não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
