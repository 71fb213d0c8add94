package handler

import (
	"net/http"
	"strconv"

	"watchstore/internal/domain/model"
	"watchstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProductCreateRequest は管理画面からの商品入力。
type ProductCreateRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Category    string        `json:"category"`
	Brand       string        `json:"brand"`
	Rating      float64       `json:"rating"`
	Reviews     int64         `json:"reviews"`
	StockCount  int64         `json:"stockCount"`
	Specs       model.SpecMap `json:"specs"`
}

// StockUpdateRequest は在庫更新の入力です。
type StockUpdateRequest struct {
	StockCount int64 `json:"stockCount"`
}

// /admin/products をまとめる
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// adminグループ（AuthJWT + AdminRoleGuard適用済み）に登録
func (h *AdminProductHandler) RegisterRoutes(admin *echo.Group) {
	admin.POST("/products", h.createProduct)
	admin.PUT("/products/:id", h.updateProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
	admin.PUT("/products/:id/stock", h.updateStock)
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "invalid body")
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	p, err := h.uc.AdminCreateProduct(c.Request().Context(), adminID, adminProductInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return respondCreated(c, "Product created successfully", p)
}

func (h *AdminProductHandler) updateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondFail(c, http.StatusBadRequest, "invalid id")
	}

	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "invalid body")
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	if err := h.uc.AdminUpdateProduct(c.Request().Context(), adminID, id, adminProductInput(req)); err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Product updated successfully", nil)
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondFail(c, http.StatusBadRequest, "invalid id")
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	if err := h.uc.AdminDeleteProduct(c.Request().Context(), adminID, id); err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Product deleted successfully", nil)
}

func (h *AdminProductHandler) updateStock(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondFail(c, http.StatusBadRequest, "invalid id")
	}

	var req StockUpdateRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "invalid body")
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "unauthorized")
	}

	if err := h.uc.AdminSetStock(c.Request().Context(), adminID, id, req.StockCount); err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Stock updated successfully", nil)
}

func adminProductInput(req ProductCreateRequest) usecase.AdminProductInput {
	return usecase.AdminProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Brand:       req.Brand,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
		StockCount:  req.StockCount,
		Specs:       req.Specs,
	}
}
