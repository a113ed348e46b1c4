package handler

import (
	"net/http"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/config"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/middleware"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/menu のHTTP。メニューCRUDは管理者のみ。
type AdminMenuHandler struct {
	uc *usecase.MenuUsecase
}

// DI
func NewAdminMenuHandler(uc *usecase.MenuUsecase) *AdminMenuHandler {
	return &AdminMenuHandler{uc: uc}
}

func (h *AdminMenuHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/menu")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminOnly())

	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *AdminMenuHandler) create(c echo.Context) error {
	var req usecase.AdminMenuItemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminCreateMenuItem(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AdminMenuHandler) update(c echo.Context) error {
	var req usecase.AdminMenuItemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminUpdateMenuItem(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminMenuHandler) remove(c echo.Context) error {
	out, err := h.uc.AdminDeleteMenuItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
