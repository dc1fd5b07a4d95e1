package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-shop-api/internal/usecase/order"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

const msgOrderStatusNotFound = "Order status not found"

type OrderStatusHandler struct {
	service *order.StatusService
}

func NewOrderStatusHandler(service *order.StatusService) *OrderStatusHandler {
	return &OrderStatusHandler{service: service}
}

func (h *OrderStatusHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/order-statuses", h.List)
	router.GET("/order-status/:uuid", h.Get)
}

func (h *OrderStatusHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/order-status/create", h.Create)
	router.PUT("/order-status/:uuid", h.Update)
	router.DELETE("/order-status/:uuid", h.Delete)
}

func (h *OrderStatusHandler) List(c *gin.Context) {
	params := pagination.FromQuery(c)

	page, err := h.service.List(c.Request.Context(), &order.ListStatusesRequest{
		Title:  c.Query("title"),
		Page:   params.Page,
		Limit:  params.Limit,
		SortBy: params.SortBy,
		Desc:   params.Desc,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, "Order statuses retrieved", page)
}

func (h *OrderStatusHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", msgOrderStatusNotFound)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order status retrieved", resp)
}

func (h *OrderStatusHandler) Create(c *gin.Context) {
	var req order.OrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Order status created successfully", resp)
}

func (h *OrderStatusHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", msgOrderStatusNotFound)
	if !ok {
		return
	}

	var req order.OrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order status updated successfully", resp)
}

func (h *OrderStatusHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", msgOrderStatusNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order status deleted successfully", nil)
}
