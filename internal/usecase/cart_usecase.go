package usecase

import (
	"context"
	"net/http"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/cart"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/catalog"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"
)

// CartUsecase はセッションカートの業務ロジック。
// 価格計算そのものは cart パッケージの純関数に任せ、ここでは
// 入力IDをカタログの実体に解決してから渡す。
type CartUsecase struct {
	sessions *cart.SessionStore
	menuRepo repo.MenuItemRepository
	clock    Clock
}

// DI
func NewCartUsecase(sessions *cart.SessionStore, menuRepo repo.MenuItemRepository, clock Clock) *CartUsecase {
	return &CartUsecase{
		sessions: sessions,
		menuRepo: menuRepo,
		clock:    clock,
	}
}

type AddOnSelection struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type AddToCartInput struct {
	ItemID      string           `json:"item_id"`
	Quantity    int              `json:"quantity"`
	VariationID string           `json:"variation_id"`
	AddOns      []AddOnSelection `json:"add_ons"`
}

type CartResponse struct {
	Items      []cart.Line `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

func (u *CartUsecase) buildResponse(c *cart.Cart) CartResponse {
	return CartResponse{
		Items:      c.Lines(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

func (u *CartUsecase) GetCart(sessionID string) CartResponse {
	return u.buildResponse(u.sessions.Get(sessionID))
}

// AddToCart はメニューを解決・正規化してからカートに積む。
// ラインの単価は追加時点でスナップショットされる。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddToCartInput) (CartResponse, error) {
	if in.ItemID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}

	// エンジンは数量を検証しない。呼び出し側で1に切り上げる。
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item, err := u.menuRepo.FindByID(ctx, in.ItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid item")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !item.Available {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "item unavailable")
	}

	// 追加時点の実効価格で積む
	item = catalog.Normalize(item, u.clock.Now())

	var variation *model.Variation
	if in.VariationID != "" {
		for i := range item.Variations {
			if item.Variations[i].ID == in.VariationID {
				variation = &item.Variations[i]
				break
			}
		}
		if variation == nil {
			return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variation")
		}
	}

	var addOns []model.AddOn
	for _, sel := range in.AddOns {
		found := false
		for _, a := range item.AddOns {
			if a.ID == sel.ID {
				a.Quantity = sel.Quantity
				if a.Quantity < 1 {
					a.Quantity = 1
				}
				addOns = append(addOns, a)
				found = true
				break
			}
		}
		if !found {
			return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid add-on")
		}
	}

	c := u.sessions.Get(sessionID)
	c.Add(item, quantity, variation, addOns)

	return u.buildResponse(c), nil
}

// 数量の絶対値更新。0以下は削除。未知のラインIDは黙殺（UIの取り残し操作）。
func (u *CartUsecase) UpdateQuantity(sessionID string, lineID string, quantity int) CartResponse {
	c := u.sessions.Get(sessionID)
	c.UpdateQuantity(lineID, quantity)
	return u.buildResponse(c)
}

func (u *CartUsecase) RemoveLine(sessionID string, lineID string) CartResponse {
	c := u.sessions.Get(sessionID)
	c.Remove(lineID)
	return u.buildResponse(c)
}

func (u *CartUsecase) ClearCart(sessionID string) CartResponse {
	c := u.sessions.Get(sessionID)
	c.Clear()
	return u.buildResponse(c)
}
