package handler

import (
	"net/http"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP。セッションカートを注文として確定する。
type CheckoutHandler struct {
	uc    *usecase.OrderUsecase
	idGen SessionIDGenerator
}

// DI
func NewCheckoutHandler(uc *usecase.OrderUsecase, idGen SessionIDGenerator) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, idGen: idGen}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.checkout)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	var req usecase.CheckoutInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// カートと同じcookie規約でセッションを特定する
	sessionID := ""
	if ck, err := c.Cookie(sessionCookieName); err == nil {
		sessionID = ck.Value
	}
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart is empty"})
	}

	order, err := h.uc.Checkout(c.Request().Context(), sessionID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, order)
}
