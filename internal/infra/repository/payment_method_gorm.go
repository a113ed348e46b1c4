package repository

import (
	"context"
	"errors"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"

	"gorm.io/gorm"
)

type PaymentMethodGormRepository struct {
	db *gorm.DB
}

// DI
func NewPaymentMethodGormRepository(db *gorm.DB) *PaymentMethodGormRepository {
	return &PaymentMethodGormRepository{db: db}
}

func (r *PaymentMethodGormRepository) List(ctx context.Context, activeOnly bool) ([]model.PaymentMethod, error) {
	tx := r.db.WithContext(ctx).Model(&model.PaymentMethod{})
	if activeOnly {
		tx = tx.Where("active = ?", true)
	}

	var methods []model.PaymentMethod
	if err := tx.Order("sort_order asc").Find(&methods).Error; err != nil {
		return []model.PaymentMethod{}, err
	}
	return methods, nil
}

func (r *PaymentMethodGormRepository) FindByID(ctx context.Context, id string) (model.PaymentMethod, error) {
	var pm model.PaymentMethod
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&pm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PaymentMethod{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PaymentMethod{}, err
	}
	return pm, nil
}

func (r *PaymentMethodGormRepository) Create(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error) {
	if err := r.db.WithContext(ctx).Create(&pm).Error; err != nil {
		return model.PaymentMethod{}, err
	}
	return pm, nil
}

func (r *PaymentMethodGormRepository) Update(ctx context.Context, pm model.PaymentMethod) error {
	res := r.db.WithContext(ctx).Model(&model.PaymentMethod{}).Where("id = ?", pm.ID).Updates(map[string]interface{}{
		"name":           pm.Name,
		"account_number": pm.AccountNumber,
		"account_name":   pm.AccountName,
		"qr_code_url":    pm.QRCodeURL,
		"active":         pm.Active,
		"sort_order":     pm.SortOrder,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PaymentMethodGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PaymentMethod{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
