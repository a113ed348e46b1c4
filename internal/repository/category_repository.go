package repository

import (
	"context"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
)

// カテゴリの永続化。一覧は sort_order 昇順で返す。
type CategoryRepository interface {
	List(ctx context.Context, includeInactive bool) ([]model.Category, error)
	FindByID(ctx context.Context, id string) (model.Category, error)

	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id string) error
}
