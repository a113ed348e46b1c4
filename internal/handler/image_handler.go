package handler

import (
	"io"
	"net/http"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/config"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/middleware"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/usecase"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/validator"

	"github.com/labstack/echo/v4"
)

// /admin/imagesのHTTP。メニュー写真等のアップロード・削除。
type ImageHandler struct {
	uc *usecase.ImageUsecase
}

// DI
func NewImageHandler(uc *usecase.ImageUsecase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

func (h *ImageHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/images")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminOnly())

	g.POST("", h.upload)
	g.DELETE("", h.remove)
}

func (h *ImageHandler) upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
	}
	defer f.Close()

	// 上限+1バイトで読み切り、超過は検証側で弾く
	data, err := io.ReadAll(io.LimitReader(f, validator.MaxImageSize+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "read failed"})
	}

	out, err := h.uc.Upload(c.Request().Context(), data)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

type DeleteImageRequest struct {
	URL string `json:"url"`
}

func (h *ImageHandler) remove(c echo.Context) error {
	var req DeleteImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Delete(c.Request().Context(), req.URL); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
