package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "impressao_xpto/internal/adapter/http/dto/response"
	"impressao_xpto/internal/usecase"
	"impressao_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// SaleHandler handles HTTP requests for sales, including the conversion of a
// quote into a sale and the payment of a pending sale.

type SaleHandler struct {
	usecase    usecase.ISaleUseCase
	conversion usecase.IConversionUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase, conversion usecase.IConversionUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc, conversion: conversion}
}

// ConvertQuote converts a quote into a pending sale, deducting stock.
func (h *SaleHandler) ConvertQuote(c *gin.Context) {
	quoteID := c.Param("id")
	log.Printf("[sale][handler] convert start quote_id=%s", quoteID)

	sale, err := h.conversion.ConvertQuote(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[sale][handler] convert failed quote_id=%s err=%v", quoteID, err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sale][handler] convert success quote_id=%s sale_id=%s", quoteID, sale.ID)

	c.JSON(http.StatusCreated, response.FromSale(sale))
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	id := c.Param("id")

	sale, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSale(sale))
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	clientID := c.Query("client_id")

	sales, err := h.usecase.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSales(sales))
}

// PaySale charges a pending sale through the payment gateway.
func (h *SaleHandler) PaySale(c *gin.Context) {
	saleID := c.Param("id")
	log.Printf("[sale][handler] pay start sale_id=%s", saleID)
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readPaymentPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[sale][handler] payload invalid in mock mode; fallback to empty payload sale_id=%s err=%v", saleID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[sale][handler] invalid payload sale_id=%s err=%v", saleID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	paid, err := h.usecase.PayWithGateway(c.Request.Context(), saleID, payload)
	if err != nil {
		log.Printf("[sale][handler] pay failed sale_id=%s err=%v", saleID, err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sale][handler] pay success sale_id=%s payment_id=%s status=%s", paid.ID, paid.PaymentID, paid.Status)

	c.JSON(http.StatusOK, response.FromSale(paid))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["payment_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("payment_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID), errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Venda não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Produto não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteTerminal):
		return pkg.NewDomainErrorSimple("QUOTE_TERMINAL", "Orçamento já finalizado", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", "Estoque insuficiente para converter o orçamento", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleNotPending):
		return pkg.NewDomainErrorSimple("SALE_NOT_PENDING", "Venda não está pendente de pagamento", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Pagamento não aprovado pelo provedor", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
