package repository

import (
	"context"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
)

// 支払い方法の永続化。一覧は sort_order 昇順で返す。
type PaymentMethodRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.PaymentMethod, error)
	FindByID(ctx context.Context, id string) (model.PaymentMethod, error)

	Create(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error)
	Update(ctx context.Context, pm model.PaymentMethod) error
	Delete(ctx context.Context, id string) error
}
