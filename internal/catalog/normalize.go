package catalog

import (
	"time"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
)

// discountActiveIn は割引ウィンドウが now を含むか判定する。
// 開始・終了は片方だけでもよい（無い側は無制限）。
func discountActiveIn(item model.MenuItem, now time.Time) bool {
	if !item.DiscountActive {
		return false
	}
	if item.DiscountStartDate != nil && now.Before(*item.DiscountStartDate) {
		return false
	}
	if item.DiscountEndDate != nil && now.After(*item.DiscountEndDate) {
		return false
	}
	return true
}

// Normalize は派生値（実効価格・割引中フラグ）を埋めた値を返す。
// now は呼び出しごとに1回だけ渡す。カート投入済みラインの再計算はしない。
func Normalize(item model.MenuItem, now time.Time) model.MenuItem {
	active := discountActiveIn(item, now)
	if active && item.DiscountPrice != nil {
		item.EffectivePrice = *item.DiscountPrice
		item.IsOnDiscount = true
	} else {
		item.EffectivePrice = item.BasePrice
		item.IsOnDiscount = false
	}
	return item
}

// NormalizeAll はカタログ全体を同じ now で正規化する。
func NormalizeAll(items []model.MenuItem, now time.Time) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, Normalize(item, now))
	}
	return out
}
