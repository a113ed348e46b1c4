package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/cart"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CartMenuRepoMock struct{ mock.Mock }

func (m *CartMenuRepoMock) ListAll(ctx context.Context) ([]model.MenuItem, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartMenuRepoMock) FindByID(ctx context.Context, id string) (model.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *CartMenuRepoMock) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartMenuRepoMock) Update(ctx context.Context, item model.MenuItem) error {
	panic("not used in CartUsecase tests")
}

func (m *CartMenuRepoMock) Delete(ctx context.Context, id string) error {
	panic("not used in CartUsecase tests")
}

func teaItem() model.MenuItem {
	return model.MenuItem{
		ID: "tea", Name: "Iced Tea", BasePrice: 100, CategoryID: "drinks", Available: true,
		Variations: []model.Variation{
			{ID: "v-large", MenuItemID: "tea", Name: "Large", Price: 20},
		},
		AddOns: []model.AddOn{
			{ID: "a-pearls", MenuItemID: "tea", Name: "Pearls", Price: 10},
			{ID: "a-jelly", MenuItemID: "tea", Name: "Jelly", Price: 5},
		},
	}
}

func newCartUsecase(mRepo *CartMenuRepoMock) (*usecase.CartUsecase, *cart.SessionStore) {
	sessions := cart.NewSessionStore(time.Hour)
	uc := usecase.NewCartUsecase(sessions, mRepo, &fixedClock{t: time.Now()})
	return uc, sessions
}

func TestCartUsecase_AddToCart_UnknownItem(t *testing.T) {
	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "ghost").Return(model.MenuItem{}, repo.ErrNotFound)

	uc, _ := newCartUsecase(mRepo)

	_, err := uc.AddToCart(context.Background(), "s1", usecase.AddToCartInput{ItemID: "ghost", Quantity: 1})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid item")
}

func TestCartUsecase_AddToCart_UnavailableItem(t *testing.T) {
	item := teaItem()
	item.Available = false

	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(item, nil)

	uc, _ := newCartUsecase(mRepo)

	_, err := uc.AddToCart(context.Background(), "s1", usecase.AddToCartInput{ItemID: "tea", Quantity: 1})
	assertHTTPError(t, err, http.StatusBadRequest, "item unavailable")
}

func TestCartUsecase_AddToCart_InvalidVariation(t *testing.T) {
	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(teaItem(), nil)

	uc, _ := newCartUsecase(mRepo)

	_, err := uc.AddToCart(context.Background(), "s1", usecase.AddToCartInput{
		ItemID: "tea", Quantity: 1, VariationID: "v-ghost",
	})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid variation")
}

func TestCartUsecase_AddToCart_InvalidAddOn(t *testing.T) {
	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(teaItem(), nil)

	uc, _ := newCartUsecase(mRepo)

	_, err := uc.AddToCart(context.Background(), "s1", usecase.AddToCartInput{
		ItemID: "tea", Quantity: 1, AddOns: []usecase.AddOnSelection{{ID: "a-ghost", Quantity: 1}},
	})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid add-on")
}

func TestCartUsecase_AddToCart_SnapshotsUnitPrice(t *testing.T) {
	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(teaItem(), nil)

	uc, _ := newCartUsecase(mRepo)

	out, err := uc.AddToCart(context.Background(), "s1", usecase.AddToCartInput{
		ItemID: "tea", Quantity: 2, VariationID: "v-large",
		AddOns: []usecase.AddOnSelection{{ID: "a-pearls", Quantity: 2}},
	})
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)

	// 100 + 20 + 10*2
	assert.Equal(t, 140.0, out.Items[0].TotalPrice)
	assert.Equal(t, 2, out.TotalItems)
	assert.Equal(t, 280.0, out.TotalPrice)
}

func TestCartUsecase_AddToCart_UsesDiscountPriceAtAddTime(t *testing.T) {
	item := teaItem()
	price := 80.0
	item.DiscountPrice = &price
	item.DiscountActive = true

	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(item, nil)

	uc, _ := newCartUsecase(mRepo)

	out, err := uc.AddToCart(context.Background(), "s1", usecase.AddToCartInput{ItemID: "tea", Quantity: 1})
	assert.NoError(t, err)
	assert.Equal(t, 80.0, out.Items[0].TotalPrice)
}

func TestCartUsecase_AddToCart_ClampsQuantityToOne(t *testing.T) {
	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(teaItem(), nil)

	uc, _ := newCartUsecase(mRepo)

	out, err := uc.AddToCart(context.Background(), "s1", usecase.AddToCartInput{ItemID: "tea", Quantity: -3})
	assert.NoError(t, err)
	assert.Equal(t, 1, out.TotalItems)
}

func TestCartUsecase_AddToCart_MergesSameSelection(t *testing.T) {
	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(teaItem(), nil)

	uc, _ := newCartUsecase(mRepo)
	ctx := context.Background()

	in := usecase.AddToCartInput{ItemID: "tea", Quantity: 1, VariationID: "v-large"}
	_, err := uc.AddToCart(ctx, "s1", in)
	assert.NoError(t, err)

	out, err := uc.AddToCart(ctx, "s1", in)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Items[0].Quantity)
}

func TestCartUsecase_UpdateQuantity_UnknownLineIsNoop(t *testing.T) {
	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(teaItem(), nil)

	uc, _ := newCartUsecase(mRepo)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "s1", usecase.AddToCartInput{ItemID: "tea", Quantity: 1})
	assert.NoError(t, err)

	out := uc.UpdateQuantity("s1", "ghost-line", 5)
	assert.Equal(t, 1, out.TotalItems)
}

func TestCartUsecase_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(teaItem(), nil)

	uc, _ := newCartUsecase(mRepo)
	ctx := context.Background()

	first, err := uc.AddToCart(ctx, "s1", usecase.AddToCartInput{ItemID: "tea", Quantity: 2})
	assert.NoError(t, err)

	out := uc.UpdateQuantity("s1", first.Items[0].ID, 0)
	assert.Len(t, out.Items, 0)
	assert.Equal(t, 0.0, out.TotalPrice)
}

func TestCartUsecase_CartsAreIsolatedPerSession(t *testing.T) {
	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(teaItem(), nil)

	uc, _ := newCartUsecase(mRepo)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "s1", usecase.AddToCartInput{ItemID: "tea", Quantity: 1})
	assert.NoError(t, err)

	assert.Equal(t, 1, uc.GetCart("s1").TotalItems)
	assert.Equal(t, 0, uc.GetCart("s2").TotalItems)
}

func TestCartUsecase_ClearCart(t *testing.T) {
	mRepo := new(CartMenuRepoMock)
	mRepo.On("FindByID", mock.Anything, "tea").Return(teaItem(), nil)

	uc, _ := newCartUsecase(mRepo)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "s1", usecase.AddToCartInput{ItemID: "tea", Quantity: 3})
	assert.NoError(t, err)

	out := uc.ClearCart("s1")
	assert.Len(t, out.Items, 0)
	assert.Equal(t, 0, out.TotalItems)
}
