package handler

import (
	"net/http"
	"strconv"

	"watchstore/internal/config"
	"watchstore/internal/middleware"
	"watchstore/internal/pagination"
	"watchstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /orders の認証必須API（モック決済のチェックアウト）
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group, cfg config.Config) {
	orders := g.Group("/orders")
	orders.Use(middleware.AuthJWT(cfg))

	orders.POST("", h.create)
	orders.GET("", h.listMine)
	orders.GET("/:id", h.detail)
}

type orderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type orderCreateRequest struct {
	Items           []orderItemRequest `json:"items"`
	ShippingAddress string             `json:"shippingAddress"`
}

func (h *OrderHandler) create(c echo.Context) error {
	var req orderCreateRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "invalid body")
	}

	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), userID, usecase.CreateOrderInput{
		Items:           items,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respondCreated(c, "Order created successfully", order)
}

func (h *OrderHandler) listMine(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	out, err := h.uc.ListMyOrders(
		c.Request().Context(),
		userID,
		intQueryParam(c, "page", pagination.DefaultPage),
		intQueryParam(c, "limit", pagination.DefaultLimit),
	)
	if err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Orders retrieved successfully", out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondFail(c, http.StatusNotFound, "order not found")
	}

	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	order, err := h.uc.GetMyOrder(c.Request().Context(), userID, id)
	if err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Order retrieved successfully", order)
}
