package handler

import (
	"net/http"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/config"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/middleware"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /payment-methodsのHTTP。公開一覧＋管理CRUD。
type PaymentMethodHandler struct {
	uc *usecase.PaymentMethodUsecase
}

// DI
func NewPaymentMethodHandler(uc *usecase.PaymentMethodUsecase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

func (h *PaymentMethodHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/payment-methods", h.list)

	g := e.Group("/admin/payment-methods")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminOnly())

	g.GET("", h.adminList)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *PaymentMethodHandler) list(c echo.Context) error {
	out, err := h.uc.ListPaymentMethods(c.Request().Context(), true)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentMethodHandler) adminList(c echo.Context) error {
	out, err := h.uc.ListPaymentMethods(c.Request().Context(), false)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentMethodHandler) create(c echo.Context) error {
	var req usecase.PaymentMethodInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminCreatePaymentMethod(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PaymentMethodHandler) update(c echo.Context) error {
	var req usecase.PaymentMethodInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminUpdatePaymentMethod(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentMethodHandler) remove(c echo.Context) error {
	out, err := h.uc.AdminDeletePaymentMethod(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
