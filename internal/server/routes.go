package server

import (
	"watchstore/internal/config"
	"watchstore/internal/handler"
	"watchstore/internal/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Product      *handler.ProductHandler
	Auth         *handler.AuthHandler
	Order        *handler.OrderHandler
	AdminProduct *handler.AdminProductHandler
	Admin        *handler.AdminHandler
}

// RegisterRoutes は /api 配下に全ルートを登録する。
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	api := e.Group("/api")

	h.Product.RegisterRoutes(api)
	h.Auth.RegisterRoutes(api, cfg)
	h.Order.RegisterRoutes(api, cfg)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	h.AdminProduct.RegisterRoutes(admin)
	h.Admin.RegisterRoutes(admin)
}
