package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pet-shop-api/internal/usecase/order"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

type OrderHandler struct {
	service *order.Service
}

func NewOrderHandler(service *order.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterAuthenticatedRoutes covers routes open to both roles; ownership is checked by the service.
func (h *OrderHandler) RegisterAuthenticatedRoutes(router *gin.RouterGroup) {
	router.GET("/order/:uuid", h.GetOrder)
	router.PUT("/order/:uuid", h.UpdateOrder)
}

func (h *OrderHandler) RegisterCustomerRoutes(router *gin.RouterGroup) {
	router.POST("/order/create", h.CreateOrder)
	router.GET("/user/orders", h.ListMyOrders)
}

func (h *OrderHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/orders", h.ListOrders)
	router.GET("/orders/dashboard", h.Dashboard)
	router.GET("/orders/shipment-locator", h.ShipmentLocator)
	router.DELETE("/order/:uuid", h.DeleteOrder)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	customer, ok := principal(c)
	if !ok {
		return
	}

	var req order.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), customer, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Order created successfully", resp)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	u, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "uuid", order.MsgOrderNotFound)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), u, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order retrieved", resp)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	u, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "uuid", order.MsgOrderNotFound)
	if !ok {
		return
	}

	var req order.UpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), u, id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order updated successfully", resp)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := uuidParam(c, "uuid", order.MsgOrderNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order deleted successfully", nil)
}

func listOrdersRequest(c *gin.Context) *order.ListOrdersRequest {
	params := pagination.FromQuery(c)
	return &order.ListOrdersRequest{
		Page:   params.Page,
		Limit:  params.Limit,
		SortBy: params.SortBy,
		Desc:   params.Desc,
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), listOrdersRequest(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Orders retrieved",
		utils.NewPaginatedData(resp.Orders, resp.Page, resp.Limit, resp.Total))
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	customer, ok := principal(c)
	if !ok {
		return
	}

	resp, err := h.service.ListForUser(c.Request.Context(), customer, listOrdersRequest(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Orders retrieved",
		utils.NewPaginatedData(resp.Orders, resp.Page, resp.Limit, resp.Total))
}

type dashboardPayload struct {
	utils.PaginatedData
	Chart             []order.ChartPoint `json:"chart"`
	TotalEarnings     decimal.Decimal    `json:"total_earnings"`
	PotentialEarnings decimal.Decimal    `json:"potential_earnings"`
	OrdersThisMonth   int64              `json:"orders_this_month"`
}

// dateRange accepts dateRange[from]/dateRange[to] as well as plain from/to.
func dateRange(c *gin.Context) (string, string) {
	r := c.QueryMap("dateRange")
	from, to := r["from"], r["to"]
	if from == "" {
		from = c.Query("from")
	}
	if to == "" {
		to = c.Query("to")
	}
	return from, to
}

func (h *OrderHandler) Dashboard(c *gin.Context) {
	params := pagination.FromQuery(c)
	from, to := dateRange(c)

	resp, err := h.service.Dashboard(c.Request.Context(), &order.DashboardRequest{
		FixRange: c.Query("fixRange"),
		From:     from,
		To:       to,
		Page:     params.Page,
		Limit:    params.Limit,
		SortBy:   params.SortBy,
		Desc:     params.Desc,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved", dashboardPayload{
		PaginatedData:     utils.NewPaginatedData(resp.Orders.Orders, resp.Orders.Page, resp.Orders.Limit, resp.Orders.Total),
		Chart:             resp.Chart,
		TotalEarnings:     resp.TotalEarnings,
		PotentialEarnings: resp.PotentialEarnings,
		OrdersThisMonth:   resp.OrdersThisMonth,
	})
}

func (h *OrderHandler) ShipmentLocator(c *gin.Context) {
	orderUUID, ok := optionalUUIDQuery(c, "orderUuid")
	if !ok {
		return
	}
	customerUUID, ok := optionalUUIDQuery(c, "customerUuid")
	if !ok {
		return
	}

	params := pagination.FromQuery(c)
	from, to := dateRange(c)

	resp, err := h.service.ShipmentLocator(c.Request.Context(), &order.ShipmentLocatorRequest{
		OrderUUID:    orderUUID,
		CustomerUUID: customerUUID,
		From:         from,
		To:           to,
		Page:         params.Page,
		Limit:        params.Limit,
		SortBy:       params.SortBy,
		Desc:         params.Desc,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipped orders retrieved",
		utils.NewPaginatedData(resp.Orders, resp.Page, resp.Limit, resp.Total))
}
