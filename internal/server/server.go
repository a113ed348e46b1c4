package server

import (
	"net/http"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/config"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// ルーティングに登録するhandler一式
type Handlers struct {
	Auth          *handler.AuthHandler
	Menu          *handler.MenuHandler
	AdminMenu     *handler.AdminMenuHandler
	Category      *handler.CategoryHandler
	PaymentMethod *handler.PaymentMethodHandler
	Settings      *handler.SettingsHandler
	Cart          *handler.CartHandler
	Checkout      *handler.CheckoutHandler
	AdminOrder    *handler.AdminOrderHandler
	Image         *handler.ImageHandler
}

// New はechoを組み立てて返す。起動はmain側でStart。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// アップロード済み画像の配信
	e.Static("/uploads", cfg.UploadDir)

	RegisterRoutes(e, cfg, h)

	return e
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Menu.RegisterRoutes(e)
	h.AdminMenu.RegisterRoutes(e, cfg)
	h.Category.RegisterRoutes(e, cfg)
	h.PaymentMethod.RegisterRoutes(e, cfg)
	h.Settings.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.AdminOrder.RegisterRoutes(e, cfg)
	h.Image.RegisterRoutes(e, cfg)
}
