package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/usecase"

	"github.com/labstack/echo/v4"
)

const sessionCookieName = "cart_session"

// セッションIDを作る約束（uuid）
type SessionIDGenerator interface {
	NewID() string
}

// /cartのHTTP。カートはcookieのセッションIDに紐づく。
type CartHandler struct {
	uc    *usecase.CartUsecase
	idGen SessionIDGenerator
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, idGen SessionIDGenerator) *CartHandler {
	return &CartHandler{uc: uc, idGen: idGen}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.getCart)
	e.POST("/cart", h.addToCart)
	e.PATCH("/cart/items/:id", h.patchItem)
	e.DELETE("/cart/items/:id", h.deleteItem)
	e.DELETE("/cart", h.clear)
}

// cookieからセッションIDを取り出す。無ければ発行してセットする。
func (h *CartHandler) sessionID(c echo.Context) string {
	if ck, err := c.Cookie(sessionCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	id := h.idGen.NewID()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return id
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.GetCart(h.sessionID(c)))
}

type AddCartRequest struct {
	ItemID      string                   `json:"item_id"`
	Quantity    int                      `json:"quantity"`
	VariationID string                   `json:"variation_id"`
	AddOns      []usecase.AddOnSelection `json:"add_ons"`
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), h.sessionID(c), usecase.AddToCartInput{
		ItemID:      req.ItemID,
		Quantity:    req.Quantity,
		VariationID: req.VariationID,
		AddOns:      req.AddOns,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) patchItem(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out := h.uc.UpdateQuantity(h.sessionID(c), c.Param("id"), req.Quantity)
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	out := h.uc.RemoveLine(h.sessionID(c), c.Param("id"))
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clear(c echo.Context) error {
	out := h.uc.ClearCart(h.sessionID(c))
	return c.JSON(http.StatusOK, out)
}

// クエリの数値パラメータを既定値つきで読む
func queryInt(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
