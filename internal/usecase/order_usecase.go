package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/cart"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"
)

// OrderUsecase はチェックアウト（セッションカート→注文確定）と
// 管理画面の注文一覧を担当する。
type OrderUsecase struct {
	orderRepo   repo.OrderRepository
	paymentRepo repo.PaymentMethodRepository
	sessions    *cart.SessionStore
	idGen       IDGenerator
}

// DI
func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	paymentRepo repo.PaymentMethodRepository,
	sessions *cart.SessionStore,
	idGen IDGenerator,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		sessions:    sessions,
		idGen:       idGen,
	}
}

type CheckoutInput struct {
	CustomerName  string `json:"customer_name"`
	ContactNumber string `json:"contact_number"`
	ServiceType   string `json:"service_type"`
	Address       string `json:"address"`
	PickupTime    string `json:"pickup_time"`
	PartySize     int    `json:"party_size"`
	DineInTime    string `json:"dine_in_time"`
	PaymentMethod string `json:"payment_method"`
	PaymentRef    string `json:"payment_ref"`
	Notes         string `json:"notes"`
}

func validateCheckout(in CheckoutInput) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return NewHTTPError(http.StatusBadRequest, "customer_name required")
	}
	if strings.TrimSpace(in.ContactNumber) == "" {
		return NewHTTPError(http.StatusBadRequest, "contact_number required")
	}

	switch model.ServiceType(in.ServiceType) {
	case model.ServiceTypeDelivery:
		if strings.TrimSpace(in.Address) == "" {
			return NewHTTPError(http.StatusBadRequest, "address required")
		}
	case model.ServiceTypePickup:
		if strings.TrimSpace(in.PickupTime) == "" {
			return NewHTTPError(http.StatusBadRequest, "pickup_time required")
		}
	case model.ServiceTypeDineIn:
		if in.PartySize < 1 {
			return NewHTTPError(http.StatusBadRequest, "invalid party_size")
		}
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid service_type")
	}

	return nil
}

// カートラインのアドオン選択を「Pearls x2, Jelly」の形に要約する
func addOnSummary(line cart.Line) string {
	parts := make([]string, 0, len(line.SelectedAddOns))
	for _, a := range line.SelectedAddOns {
		if a.Quantity > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", a.Name, a.Quantity))
		} else {
			parts = append(parts, a.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// Checkout はセッションカートを注文として確定し、カートを空にする。
func (u *OrderUsecase) Checkout(ctx context.Context, sessionID string, in CheckoutInput) (model.Order, error) {
	if err := validateCheckout(in); err != nil {
		return model.Order{}, err
	}

	c := u.sessions.Get(sessionID)
	lines := c.Lines()
	if len(lines) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	pm, err := u.paymentRepo.FindByID(ctx, in.PaymentMethod)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !pm.Active {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}

	order := model.Order{
		ReferenceNumber: u.idGen.NewID(),
		CustomerName:    strings.TrimSpace(in.CustomerName),
		ContactNumber:   strings.TrimSpace(in.ContactNumber),
		ServiceType:     model.ServiceType(in.ServiceType),
		Address:         in.Address,
		PickupTime:      in.PickupTime,
		PartySize:       in.PartySize,
		DineInTime:      in.DineInTime,
		PaymentMethodID: pm.ID,
		PaymentRef:      in.PaymentRef,
		Notes:           in.Notes,
		Status:          model.OrderStatusPending,
		TotalPrice:      c.TotalPrice(),
	}
	for _, line := range lines {
		variationName := ""
		if line.SelectedVariation != nil {
			variationName = line.SelectedVariation.Name
		}
		order.Items = append(order.Items, model.OrderItem{
			LineID:        line.ID,
			MenuItemID:    line.Item.ID,
			Name:          line.Item.Name,
			VariationName: variationName,
			AddOnSummary:  addOnSummary(line),
			Quantity:      line.Quantity,
			UnitPrice:     line.TotalPrice,
		})
	}

	created, err := u.orderRepo.Create(ctx, order)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 確定済みの明細をカートに残さない
	c.Clear()

	return created, nil
}

type ListOrdersInput struct {
	Page   int
	Limit  int
	Status string
}

type OrderListResponse struct {
	Orders []model.Order `json:"orders"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

// 管理画面の注文一覧
func (u *OrderUsecase) AdminListOrders(ctx context.Context, in ListOrdersInput) (OrderListResponse, error) {
	if in.Page < 1 {
		return OrderListResponse{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return OrderListResponse{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	orders, total, err := u.orderRepo.List(ctx, repo.OrderListFilter{
		Page:   in.Page,
		Limit:  in.Limit,
		Status: in.Status,
	})
	if err != nil {
		return OrderListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderListResponse{
		Orders: orders,
		Total:  total,
		Page:   in.Page,
		Limit:  in.Limit,
	}, nil
}

// ステータス変更（PENDING→CONFIRMED→COMPLETED / CANCELED）
func (u *OrderUsecase) AdminUpdateOrderStatus(ctx context.Context, orderID int64, status string) (model.Order, error) {
	switch model.OrderStatus(status) {
	case model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusCompleted, model.OrderStatusCanceled:
	default:
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatus(status))
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}
