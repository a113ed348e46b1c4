package repository

import (
	"context"
	"time"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
)

// 管理画面の注文一覧用フィルタ
type OrderListFilter struct {
	Page   int
	Limit  int
	Status string
	From   *time.Time
	To     *time.Time
}

type OrderRepository interface {
	// 明細ごと保存する
	Create(ctx context.Context, order model.Order) (model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
