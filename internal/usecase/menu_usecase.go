package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/catalog"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

type MenuUsecase struct {
	menuRepo repo.MenuItemRepository
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewMenuUsecase(menuRepo repo.MenuItemRepository, idGen IDGenerator, clock Clock) *MenuUsecase {
	return &MenuUsecase{
		menuRepo: menuRepo,
		idGen:    idGen,
		clock:    clock,
	}
}

// GET /menuの入力DTO
type ListMenuInput struct {
	Category string
	Q        string
}

type MenuListResponse struct {
	Items []model.MenuItem `json:"items"`
}

// ListMenu はカタログを取得し、割引ウィンドウを評価してから絞り込む。
// 「今」の評価は呼び出しごとに1回。
func (u *MenuUsecase) ListMenu(ctx context.Context, in ListMenuInput) (MenuListResponse, error) {
	items, err := u.menuRepo.ListAll(ctx)
	if err != nil {
		return MenuListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items = catalog.NormalizeAll(items, u.clock.Now())

	category := in.Category
	if category == "" {
		category = catalog.CategoryAll
	}
	items = catalog.Filter(items, category, in.Q)

	return MenuListResponse{Items: items}, nil
}

// 1品取得（正規化済み）
func (u *MenuUsecase) GetMenuItem(ctx context.Context, id string) (model.MenuItem, error) {
	item, err := u.menuRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return catalog.Normalize(item, u.clock.Now()), nil
}

type VariationInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AddOnInput struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type AdminMenuItemInput struct {
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	BasePrice         float64          `json:"base_price"`
	Category          string           `json:"category"`
	Popular           bool             `json:"popular"`
	Available         bool             `json:"available"`
	ImageURL          string           `json:"image_url"`
	DiscountPrice     *float64         `json:"discount_price"`
	DiscountStartDate *time.Time       `json:"discount_start_date"`
	DiscountEndDate   *time.Time       `json:"discount_end_date"`
	DiscountActive    bool             `json:"discount_active"`
	Variations        []VariationInput `json:"variations"`
	AddOns            []AddOnInput     `json:"add_ons"`
}

func (u *MenuUsecase) validateInput(in AdminMenuItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.BasePrice <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid base_price")
	}
	if strings.TrimSpace(in.Category) == "" {
		return NewHTTPError(http.StatusBadRequest, "category required")
	}
	if in.DiscountPrice != nil && *in.DiscountPrice <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid discount_price")
	}
	for _, v := range in.Variations {
		if strings.TrimSpace(v.Name) == "" {
			return NewHTTPError(http.StatusBadRequest, "variation name required")
		}
	}
	for _, a := range in.AddOns {
		if strings.TrimSpace(a.Name) == "" {
			return NewHTTPError(http.StatusBadRequest, "add-on name required")
		}
	}
	return nil
}

func (u *MenuUsecase) buildItem(id string, in AdminMenuItemInput) model.MenuItem {
	item := model.MenuItem{
		ID:                id,
		Name:              strings.TrimSpace(in.Name),
		Description:       in.Description,
		BasePrice:         in.BasePrice,
		CategoryID:        in.Category,
		Popular:           in.Popular,
		Available:         in.Available,
		ImageURL:          in.ImageURL,
		DiscountPrice:     in.DiscountPrice,
		DiscountStartDate: in.DiscountStartDate,
		DiscountEndDate:   in.DiscountEndDate,
		DiscountActive:    in.DiscountActive,
	}
	for _, v := range in.Variations {
		item.Variations = append(item.Variations, model.Variation{
			ID:         u.idGen.NewID(),
			MenuItemID: id,
			Name:       strings.TrimSpace(v.Name),
			Price:      v.Price,
		})
	}
	for _, a := range in.AddOns {
		item.AddOns = append(item.AddOns, model.AddOn{
			ID:         u.idGen.NewID(),
			MenuItemID: id,
			Name:       strings.TrimSpace(a.Name),
			Price:      a.Price,
			Category:   a.Category,
		})
	}
	return item
}

// 作成後は全件リフェッチした一覧を返す（差分更新はしない）。
func (u *MenuUsecase) AdminCreateMenuItem(ctx context.Context, in AdminMenuItemInput) (MenuListResponse, error) {
	if err := u.validateInput(in); err != nil {
		return MenuListResponse{}, err
	}

	item := u.buildItem(u.idGen.NewID(), in)
	if _, err := u.menuRepo.Create(ctx, item); err != nil {
		return MenuListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.ListMenu(ctx, ListMenuInput{})
}

// 更新。バリエーション・アドオンは総入れ替え（IDは振り直し）。
func (u *MenuUsecase) AdminUpdateMenuItem(ctx context.Context, id string, in AdminMenuItemInput) (MenuListResponse, error) {
	if strings.TrimSpace(id) == "" {
		return MenuListResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.validateInput(in); err != nil {
		return MenuListResponse{}, err
	}

	err := u.menuRepo.Update(ctx, u.buildItem(id, in))
	if err == repo.ErrNotFound {
		return MenuListResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return MenuListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.ListMenu(ctx, ListMenuInput{})
}

func (u *MenuUsecase) AdminDeleteMenuItem(ctx context.Context, id string) (MenuListResponse, error) {
	if strings.TrimSpace(id) == "" {
		return MenuListResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.menuRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return MenuListResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return MenuListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.ListMenu(ctx, ListMenuInput{})
}
