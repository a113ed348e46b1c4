package catalog_test

import (
	"testing"
	"time"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/catalog"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func discounted(base float64, discount float64, start, end *time.Time, active bool) model.MenuItem {
	return model.MenuItem{
		ID:                "item",
		Name:              "Iced Coffee",
		BasePrice:         base,
		DiscountPrice:     &discount,
		DiscountStartDate: start,
		DiscountEndDate:   end,
		DiscountActive:    active,
	}
}

func TestNormalize_DiscountInsideWindow(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	start := now.Add(-24 * time.Hour)
	end := now.Add(24 * time.Hour)

	got := catalog.Normalize(discounted(100, 80, &start, &end, true), now)

	assert.True(t, got.IsOnDiscount)
	assert.Equal(t, 80.0, got.EffectivePrice)
}

func TestNormalize_WindowClosedFallsBackToBasePrice(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	start := now.Add(-48 * time.Hour)
	end := now.Add(-24 * time.Hour)

	got := catalog.Normalize(discounted(100, 80, &start, &end, true), now)

	assert.False(t, got.IsOnDiscount)
	assert.Equal(t, 100.0, got.EffectivePrice)
}

func TestNormalize_InactiveFlagDisablesDiscount(t *testing.T) {
	now := time.Now()

	got := catalog.Normalize(discounted(100, 80, nil, nil, false), now)

	assert.False(t, got.IsOnDiscount)
	assert.Equal(t, 100.0, got.EffectivePrice)
}

func TestNormalize_OpenEndedWindow(t *testing.T) {
	now := time.Now()
	start := now.Add(-time.Hour)

	got := catalog.Normalize(discounted(100, 80, &start, nil, true), now)

	assert.True(t, got.IsOnDiscount)
	assert.Equal(t, 80.0, got.EffectivePrice)
}

func TestNormalize_ActiveWithoutDiscountPrice(t *testing.T) {
	now := time.Now()
	item := model.MenuItem{ID: "item", BasePrice: 100, DiscountActive: true}

	got := catalog.Normalize(item, now)

	assert.False(t, got.IsOnDiscount)
	assert.Equal(t, 100.0, got.EffectivePrice)
}

func sampleMenu() []model.MenuItem {
	return []model.MenuItem{
		{ID: "1", Name: "Milk Tea", Description: "classic pearl milk tea", CategoryID: "a"},
		{ID: "2", Name: "Iced Coffee", Description: "cold brew", CategoryID: "a"},
		{ID: "3", Name: "Siopao", Description: "steamed bun", CategoryID: "b"},
	}
}

func TestFilter_CategoryOnly(t *testing.T) {
	got := catalog.Filter(sampleMenu(), "a", "")

	assert.Equal(t, 2, len(got))
	for _, item := range got {
		assert.Equal(t, "a", item.CategoryID)
	}
}

func TestFilter_AllCategoryKeepsEverything(t *testing.T) {
	got := catalog.Filter(sampleMenu(), catalog.CategoryAll, "")
	assert.Equal(t, 3, len(got))
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := catalog.Filter(sampleMenu(), catalog.CategoryAll, "  MILK  ")

	assert.Equal(t, 1, len(got))
	assert.Equal(t, "Milk Tea", got[0].Name)
}

func TestFilter_SearchMatchesDescription(t *testing.T) {
	got := catalog.Filter(sampleMenu(), catalog.CategoryAll, "steamed")

	assert.Equal(t, 1, len(got))
	assert.Equal(t, "Siopao", got[0].Name)
}

func TestFilter_FiltersIntersect(t *testing.T) {
	// カテゴリaに絞った上で、bにしか無い語を検索→空
	got := catalog.Filter(sampleMenu(), "a", "siopao")
	assert.Equal(t, 0, len(got))
}

func TestFilter_NoMatchIsEmptyNotError(t *testing.T) {
	got := catalog.Filter(sampleMenu(), catalog.CategoryAll, "pizza")
	assert.Equal(t, 0, len(got))
}
