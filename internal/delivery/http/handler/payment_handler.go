package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-shop-api/internal/usecase/order"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

const msgPaymentNotFound = "Payment not found"

type PaymentHandler struct {
	service *order.PaymentService
}

func NewPaymentHandler(service *order.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RegisterAuthenticatedRoutes expects AuthMiddleware on router; payment details are not public.
func (h *PaymentHandler) RegisterAuthenticatedRoutes(router *gin.RouterGroup) {
	router.GET("/payments", h.List)
	router.GET("/payment/:uuid", h.Get)
}

func (h *PaymentHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/payment/create", h.Create)
	router.PUT("/payment/:uuid", h.Update)
	router.DELETE("/payment/:uuid", h.Delete)
}

func (h *PaymentHandler) List(c *gin.Context) {
	params := pagination.FromQuery(c)

	page, err := h.service.List(c.Request.Context(), &order.ListPaymentsRequest{
		Type:   c.Query("type"),
		Page:   params.Page,
		Limit:  params.Limit,
		SortBy: params.SortBy,
		Desc:   params.Desc,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, "Payments retrieved", page)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", msgPaymentNotFound)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment retrieved", resp)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req order.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Payment created successfully", resp)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", msgPaymentNotFound)
	if !ok {
		return
	}

	var req order.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment updated successfully", resp)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", msgPaymentNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment deleted successfully", nil)
}
