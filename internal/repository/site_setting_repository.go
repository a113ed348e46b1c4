package repository

import (
	"context"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
)

// サイト設定の永続化。キー（ID）単位の読み書きで、Upsertは存在すれば上書き。
type SiteSettingRepository interface {
	ListAll(ctx context.Context) ([]model.SiteSetting, error)
	UpdateValue(ctx context.Context, id string, value string) error
	Upsert(ctx context.Context, s model.SiteSetting) error
}
