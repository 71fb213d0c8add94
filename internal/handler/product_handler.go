package handler

import (
	"net/http"
	"strconv"

	"watchstore/internal/pagination"
	"watchstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 公開商品のルートを登録。固定パスは :id より先に。
func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.list)
	g.GET("/products/featured", h.featured)
	g.GET("/products/categories", h.categories)
	g.GET("/products/brands", h.brands)
	g.GET("/products/:id", h.detail)
}

func (h *ProductHandler) list(c echo.Context) error {
	in := usecase.ListProductsInput{
		Page:      intQueryParam(c, "page", pagination.DefaultPage),
		Limit:     intQueryParam(c, "limit", pagination.DefaultLimit),
		Category:  c.QueryParam("category"),
		Brand:     c.QueryParam("brand"),
		MinPrice:  floatPtrQueryParam(c, "minPrice"),
		MaxPrice:  floatPtrQueryParam(c, "maxPrice"),
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	out, err := h.uc.ListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Products retrieved successfully", out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// 不正なIDは存在しないIDと同じ扱い
		return respondFail(c, http.StatusNotFound, "product not found")
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Product retrieved successfully", p)
}

func (h *ProductHandler) featured(c echo.Context) error {
	limit := intQueryParam(c, "limit", 0)

	products, err := h.uc.FeaturedProducts(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Featured products retrieved successfully", products)
}

func (h *ProductHandler) categories(c echo.Context) error {
	values, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Categories retrieved successfully", values)
}

func (h *ProductHandler) brands(c echo.Context) error {
	values, err := h.uc.Brands(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return respondOK(c, "Brands retrieved successfully", values)
}
