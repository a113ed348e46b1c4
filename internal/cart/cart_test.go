package cart_test

import (
	"testing"
	"time"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/cart"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func tea() model.MenuItem {
	return model.MenuItem{ID: "tea", Name: "Milk Tea", BasePrice: 80}
}

func largeVariation() *model.Variation {
	return &model.Variation{ID: "var-large", Name: "Large", Price: 20}
}

func pearls(qty int) model.AddOn {
	return model.AddOn{ID: "addon-pearls", Name: "Pearls", Price: 15, Quantity: qty}
}

func TestUnitPrice_BasePriceOnly(t *testing.T) {
	assert.Equal(t, 80.0, cart.UnitPrice(tea(), nil, nil))
}

func TestUnitPrice_EffectivePriceWins(t *testing.T) {
	item := tea()
	item.EffectivePrice = 64

	assert.Equal(t, 64.0, cart.UnitPrice(item, nil, nil))
}

func TestUnitPrice_VariationAndAddOns(t *testing.T) {
	// 80 + 20 + 15*2
	got := cart.UnitPrice(tea(), largeVariation(), []model.AddOn{pearls(2)})
	assert.Equal(t, 130.0, got)
}

func TestUnitPrice_AddOnQuantityDefaultsToOne(t *testing.T) {
	got := cart.UnitPrice(tea(), nil, []model.AddOn{pearls(0)})
	assert.Equal(t, 95.0, got)
}

func TestCart_Add_MergesSameSelection(t *testing.T) {
	c := cart.New()

	c.Add(tea(), 1, largeVariation(), []model.AddOn{pearls(1)})
	c.Add(tea(), 2, largeVariation(), []model.AddOn{pearls(1)})

	lines := c.Lines()
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestCart_Add_DifferentVariationIsNewLine(t *testing.T) {
	c := cart.New()

	c.Add(tea(), 1, nil, nil)
	c.Add(tea(), 1, largeVariation(), nil)

	assert.Equal(t, 2, len(c.Lines()))
}

func TestCart_Add_DifferentAddOnSetIsNewLine(t *testing.T) {
	c := cart.New()

	c.Add(tea(), 1, nil, []model.AddOn{pearls(1)})
	c.Add(tea(), 1, nil, nil)

	assert.Equal(t, 2, len(c.Lines()))
}

func TestCart_Add_AddOnOrderDoesNotSplitLines(t *testing.T) {
	c := cart.New()
	jelly := model.AddOn{ID: "addon-jelly", Name: "Jelly", Price: 10}

	c.Add(tea(), 1, nil, []model.AddOn{pearls(1), jelly})
	c.Add(tea(), 1, nil, []model.AddOn{jelly, pearls(1)})

	lines := c.Lines()
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_Add_SameAddOnSetDifferentQuantityStillMerges(t *testing.T) {
	// 数量はキーに含めない。先勝ちの単価スナップショットを保つ。
	c := cart.New()

	c.Add(tea(), 1, nil, []model.AddOn{pearls(1)})
	c.Add(tea(), 1, nil, []model.AddOn{pearls(3)})

	lines := c.Lines()
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 95.0, lines[0].TotalPrice)
}

func TestCart_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	c := cart.New()
	c.Add(tea(), 2, nil, nil)

	c.UpdateQuantity("tea-default-none", 0)

	assert.Equal(t, 0, len(c.Lines()))
	assert.Equal(t, 0, c.TotalItems())
}

func TestCart_UpdateQuantity_UnknownLineIsNoop(t *testing.T) {
	c := cart.New()
	c.Add(tea(), 2, nil, nil)

	c.UpdateQuantity("coffee-default-none", 5)

	assert.Equal(t, 2, c.TotalItems())
}

func TestCart_Totals_EmptyCart(t *testing.T) {
	c := cart.New()

	assert.Equal(t, 0.0, c.TotalPrice())
	assert.Equal(t, 0, c.TotalItems())
}

func TestCart_TotalPrice_MultipliesQuantity(t *testing.T) {
	c := cart.New()
	item := model.MenuItem{ID: "cake", BasePrice: 50}
	c.Add(item, 3, nil, nil)

	assert.Equal(t, 150.0, c.TotalPrice())
}

func TestCart_Clear(t *testing.T) {
	c := cart.New()
	c.Add(tea(), 1, nil, nil)
	c.Add(tea(), 1, largeVariation(), nil)

	c.Clear()

	assert.Equal(t, 0, len(c.Lines()))
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestCart_Scenario_AddUpdateRemove(t *testing.T) {
	c := cart.New()

	c.Add(tea(), 2, nil, nil)
	assert.Equal(t, 2, c.TotalItems())
	assert.Equal(t, 160.0, c.TotalPrice())

	c.UpdateQuantity("tea-default-none", 1)
	assert.Equal(t, 80.0, c.TotalPrice())

	c.Remove("tea-default-none")
	assert.Equal(t, 0, len(c.Lines()))
}

func TestSessionStore_GetCreatesAndReuses(t *testing.T) {
	s := cart.NewSessionStore(time.Hour)

	a := s.Get("sess-a")
	a.Add(tea(), 1, nil, nil)

	again := s.Get("sess-a")
	assert.Equal(t, 1, again.TotalItems())

	b := s.Get("sess-b")
	assert.Equal(t, 0, b.TotalItems())
}

func TestSessionStore_Drop(t *testing.T) {
	s := cart.NewSessionStore(time.Hour)

	s.Get("sess-a").Add(tea(), 2, nil, nil)
	s.Drop("sess-a")

	assert.Equal(t, 0, s.Get("sess-a").TotalItems())
}
