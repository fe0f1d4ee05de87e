package handlers

import (
	"bytes"
	"context"
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

func TestSaleHandler_ConvertQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleUC := mocks.NewMockISaleUseCase(ctrl)
		convUC := mocks.NewMockIConversionUseCase(ctrl)
		h := NewSaleHandler(saleUC, convUC)

		r := gin.New()
		r.POST("/v1/quotes/:id/convert", h.ConvertQuote)

		convUC.EXPECT().ConvertQuote(gomock.Any(), "q-1").Return(entities.Sale{
			ID: "s-1", QuoteID: "q-1", ClientID: "client-1", Total: 200, Status: entities.SaleStatusPendente,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["id"] != "s-1" || got["status"] != "pendente" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("insufficient stock maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleUC := mocks.NewMockISaleUseCase(ctrl)
		convUC := mocks.NewMockIConversionUseCase(ctrl)
		h := NewSaleHandler(saleUC, convUC)

		r := gin.New()
		r.POST("/v1/quotes/:id/convert", h.ConvertQuote)

		convUC.EXPECT().ConvertQuote(gomock.Any(), "q-1").Return(entities.Sale{}, usecase.ErrInsufficientStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("terminal quote maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleUC := mocks.NewMockISaleUseCase(ctrl)
		convUC := mocks.NewMockIConversionUseCase(ctrl)
		h := NewSaleHandler(saleUC, convUC)

		r := gin.New()
		r.POST("/v1/quotes/:id/convert", h.ConvertQuote)

		convUC.EXPECT().ConvertQuote(gomock.Any(), "q-1").Return(entities.Sale{}, usecase.ErrQuoteTerminal)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSaleHandler_PaySale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleUC := mocks.NewMockISaleUseCase(ctrl)
		convUC := mocks.NewMockIConversionUseCase(ctrl)
		h := NewSaleHandler(saleUC, convUC)

		r := gin.New()
		r.POST("/v1/sales/:id/payments", h.PaySale)

		saleUC.EXPECT().PayWithGateway(gomock.Any(), "s-1", gomock.Any()).Return(entities.Sale{
			ID: "s-1", Status: entities.SaleStatusPago, PaymentID: "mp-1",
		}, nil)

		body := `{"payment_method_id":"pix","payer":{"email":"client@example.com"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales/s-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["status"] != "pago" || got["payment_id"] != "mp-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("envelope payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleUC := mocks.NewMockISaleUseCase(ctrl)
		convUC := mocks.NewMockIConversionUseCase(ctrl)
		h := NewSaleHandler(saleUC, convUC)

		r := gin.New()
		r.POST("/v1/sales/:id/payments", h.PaySale)

		saleUC.EXPECT().PayWithGateway(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.Sale, error) {
				var fields map[string]any
				if err := json.Unmarshal(payload, &fields); err != nil {
					t.Fatalf("payload is not valid json: %v", err)
				}
				if fields["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", string(payload))
				}
				return entities.Sale{ID: "s-1", Status: entities.SaleStatusPago}, nil
			})

		body := `{"payment_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales/s-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleUC := mocks.NewMockISaleUseCase(ctrl)
		convUC := mocks.NewMockIConversionUseCase(ctrl)
		h := NewSaleHandler(saleUC, convUC)

		r := gin.New()
		r.POST("/v1/sales/:id/payments", h.PaySale)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales/s-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sale not pending maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleUC := mocks.NewMockISaleUseCase(ctrl)
		convUC := mocks.NewMockIConversionUseCase(ctrl)
		h := NewSaleHandler(saleUC, convUC)

		r := gin.New()
		r.POST("/v1/sales/:id/payments", h.PaySale)

		saleUC.EXPECT().PayWithGateway(gomock.Any(), "s-1", gomock.Any()).Return(entities.Sale{}, usecase.ErrSaleNotPending)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales/s-1/payments", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("payment rejected maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleUC := mocks.NewMockISaleUseCase(ctrl)
		convUC := mocks.NewMockIConversionUseCase(ctrl)
		h := NewSaleHandler(saleUC, convUC)

		r := gin.New()
		r.POST("/v1/sales/:id/payments", h.PaySale)

		saleUC.EXPECT().PayWithGateway(gomock.Any(), "s-1", gomock.Any()).Return(entities.Sale{}, usecase.ErrPaymentNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales/s-1/payments", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestSaleHandler_GetSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleUC := mocks.NewMockISaleUseCase(ctrl)
		convUC := mocks.NewMockIConversionUseCase(ctrl)
		h := NewSaleHandler(saleUC, convUC)

		r := gin.New()
		r.GET("/v1/sales/:id", h.GetSale)

		saleUC.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Sale{ID: "s-1", Status: entities.SaleStatusPendente}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/sales/s-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleUC := mocks.NewMockISaleUseCase(ctrl)
		convUC := mocks.NewMockIConversionUseCase(ctrl)
		h := NewSaleHandler(saleUC, convUC)

		r := gin.New()
		r.GET("/v1/sales/:id", h.GetSale)

		saleUC.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Sale{}, usecase.ErrSaleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/sales/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
