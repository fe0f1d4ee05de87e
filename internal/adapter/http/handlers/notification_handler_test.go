package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"impressao_xpto/internal/adapter/http/handlers/mocks"
	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_ListNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.GET("/v1/notifications", h.ListNotifications)

		uc.EXPECT().ListByRecipient(gomock.Any(), "prov-1").Return([]entities.Notification{
			{ID: "n-1", RecipientID: "prov-1", Read: false},
			{ID: "n-2", RecipientID: "prov-1", Read: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications?recipient_id=prov-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if len(got) != 2 {
			t.Fatalf("expected 2 notifications, got %s", w.Body.String())
		}
	})

	t.Run("missing recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.GET("/v1/notifications", h.ListNotifications)

		uc.EXPECT().ListByRecipient(gomock.Any(), "").Return(nil, usecase.ErrInvalidRecipientID)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", h.MarkRead)

		uc.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", Read: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-1/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["read"] != true {
			t.Fatalf("expected read notification, got %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", h.MarkRead)

		uc.EXPECT().MarkRead(gomock.Any(), "missing").Return(entities.Notification{}, usecase.ErrNotificationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/missing/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
