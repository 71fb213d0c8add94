package handler

import (
	"net/http"
	"strconv"

	"watchstore/internal/domain/model"
	"watchstore/internal/pagination"
	"watchstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理画面の注文・ユーザー・ダッシュボードAPI
type AdminHandler struct {
	orderUC *usecase.OrderUsecase
	adminUC *usecase.AdminUsecase
}

// DI
func NewAdminHandler(orderUC *usecase.OrderUsecase, adminUC *usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{orderUC: orderUC, adminUC: adminUC}
}

func (h *AdminHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/orders", h.listOrders)
	admin.PATCH("/orders/:id/status", h.updateOrderStatus)
	admin.GET("/users", h.listUsers)
	admin.GET("/dashboard/stats", h.dashboardStats)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) listOrders(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	out, err := h.orderUC.AdminListOrders(
		c.Request().Context(),
		adminID,
		intQueryParam(c, "page", pagination.DefaultPage),
		intQueryParam(c, "limit", pagination.DefaultLimit),
		c.QueryParam("status"),
	)
	if err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Orders retrieved successfully", out)
}

func (h *AdminHandler) updateOrderStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondFail(c, http.StatusBadRequest, "invalid id")
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "invalid body")
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	if err := h.orderUC.AdminUpdateOrderStatus(c.Request().Context(), adminID, id, model.OrderStatus(req.Status)); err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Order status updated successfully", nil)
}

func (h *AdminHandler) listUsers(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	out, err := h.adminUC.ListUsers(
		c.Request().Context(),
		adminID,
		intQueryParam(c, "page", pagination.DefaultPage),
		intQueryParam(c, "limit", pagination.DefaultLimit),
	)
	if err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Users retrieved successfully", out)
}

func (h *AdminHandler) dashboardStats(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	stats, err := h.adminUC.GetDashboardStats(c.Request().Context(), adminID)
	if err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Dashboard stats retrieved successfully", stats)
}
