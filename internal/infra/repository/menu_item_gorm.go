package repository

import (
	"context"
	"errors"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"

	"gorm.io/gorm"
)

type MenuItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewMenuItemGormRepository(db *gorm.DB) *MenuItemGormRepository {
	return &MenuItemGormRepository{db: db}
}

// 全メニューをバリエーション・アドオン込みで返す。表示順は作成日時。
func (r *MenuItemGormRepository) ListAll(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Preload("Variations").
		Preload("AddOns").
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return []model.MenuItem{}, err
	}
	return items, nil
}

// IDで1品取得（子テーブル込み）
func (r *MenuItemGormRepository) FindByID(ctx context.Context, id string) (model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.WithContext(ctx).
		Preload("Variations").
		Preload("AddOns").
		Where("id = ?", id).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.MenuItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

// メニューの作成。子テーブルはGORMのassociationでまとめて入れる。
func (r *MenuItemGormRepository) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

// メニューの更新。バリエーション・アドオンは削除→挿入の総入れ替え。
func (r *MenuItemGormRepository) Update(ctx context.Context, item model.MenuItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.MenuItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
			"name":                item.Name,
			"description":         item.Description,
			"base_price":          item.BasePrice,
			"category_id":         item.CategoryID,
			"popular":             item.Popular,
			"available":           item.Available,
			"image_url":           item.ImageURL,
			"discount_price":      item.DiscountPrice,
			"discount_start_date": item.DiscountStartDate,
			"discount_end_date":   item.DiscountEndDate,
			"discount_active":     item.DiscountActive,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&model.Variation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&model.AddOn{}).Error; err != nil {
			return err
		}

		if len(item.Variations) > 0 {
			if err := tx.Create(&item.Variations).Error; err != nil {
				return err
			}
		}
		if len(item.AddOns) > 0 {
			if err := tx.Create(&item.AddOns).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// メニュー削除。子テーブルはDBの外部キーでカスケードされる。
func (r *MenuItemGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
