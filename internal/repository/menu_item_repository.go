package repository

import (
	"context"
	"errors"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// メニューの永続化（保存・取得）だけを約束。
// 取得はバリエーション・アドオンを結合した状態で返す。
type MenuItemRepository interface {
	ListAll(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id string) (model.MenuItem, error)

	Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error)
	// 本体を更新し、バリエーション・アドオンは総入れ替えする
	Update(ctx context.Context, item model.MenuItem) error
	Delete(ctx context.Context, id string) error
}
