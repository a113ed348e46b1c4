package repository

import (
	"context"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteSettingGormRepository struct {
	db *gorm.DB
}

// DI
func NewSiteSettingGormRepository(db *gorm.DB) *SiteSettingGormRepository {
	return &SiteSettingGormRepository{db: db}
}

func (r *SiteSettingGormRepository) ListAll(ctx context.Context) ([]model.SiteSetting, error) {
	var settings []model.SiteSetting
	if err := r.db.WithContext(ctx).Order("id asc").Find(&settings).Error; err != nil {
		return []model.SiteSetting{}, err
	}
	return settings, nil
}

func (r *SiteSettingGormRepository) UpdateValue(ctx context.Context, id string, value string) error {
	res := r.db.WithContext(ctx).Model(&model.SiteSetting{}).
		Where("id = ?", id).
		Update("value", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Upsert は同じIDがあれば上書き、無ければ挿入（バナー設定の種まきで使う）。
func (r *SiteSettingGormRepository) Upsert(ctx context.Context, s model.SiteSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "type", "description"}),
		}).
		Create(&s).Error
}
