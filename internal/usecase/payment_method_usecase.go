package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"
)

type PaymentMethodUsecase struct {
	paymentRepo repo.PaymentMethodRepository
}

// DI
func NewPaymentMethodUsecase(paymentRepo repo.PaymentMethodRepository) *PaymentMethodUsecase {
	return &PaymentMethodUsecase{paymentRepo: paymentRepo}
}

type PaymentMethodListResponse struct {
	PaymentMethods []model.PaymentMethod `json:"payment_methods"`
}

func (u *PaymentMethodUsecase) ListPaymentMethods(ctx context.Context, activeOnly bool) (PaymentMethodListResponse, error) {
	methods, err := u.paymentRepo.List(ctx, activeOnly)
	if err != nil {
		return PaymentMethodListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return PaymentMethodListResponse{PaymentMethods: methods}, nil
}

type PaymentMethodInput struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	QRCodeURL     string `json:"qr_code_url"`
	Active        bool   `json:"active"`
	SortOrder     int    `json:"sort_order"`
}

func validatePaymentMethod(in PaymentMethodInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return NewHTTPError(http.StatusBadRequest, "id required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	return nil
}

func (u *PaymentMethodUsecase) AdminCreatePaymentMethod(ctx context.Context, in PaymentMethodInput) (PaymentMethodListResponse, error) {
	if err := validatePaymentMethod(in); err != nil {
		return PaymentMethodListResponse{}, err
	}

	_, err := u.paymentRepo.Create(ctx, model.PaymentMethod{
		ID:            strings.TrimSpace(in.ID),
		Name:          strings.TrimSpace(in.Name),
		AccountNumber: in.AccountNumber,
		AccountName:   in.AccountName,
		QRCodeURL:     in.QRCodeURL,
		Active:        in.Active,
		SortOrder:     in.SortOrder,
	})
	if err != nil {
		return PaymentMethodListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.ListPaymentMethods(ctx, false)
}

func (u *PaymentMethodUsecase) AdminUpdatePaymentMethod(ctx context.Context, id string, in PaymentMethodInput) (PaymentMethodListResponse, error) {
	in.ID = id
	if err := validatePaymentMethod(in); err != nil {
		return PaymentMethodListResponse{}, err
	}

	err := u.paymentRepo.Update(ctx, model.PaymentMethod{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		AccountNumber: in.AccountNumber,
		AccountName:   in.AccountName,
		QRCodeURL:     in.QRCodeURL,
		Active:        in.Active,
		SortOrder:     in.SortOrder,
	})
	if err == repo.ErrNotFound {
		return PaymentMethodListResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return PaymentMethodListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.ListPaymentMethods(ctx, false)
}

func (u *PaymentMethodUsecase) AdminDeletePaymentMethod(ctx context.Context, id string) (PaymentMethodListResponse, error) {
	if strings.TrimSpace(id) == "" {
		return PaymentMethodListResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.paymentRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return PaymentMethodListResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return PaymentMethodListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.ListPaymentMethods(ctx, false)
}
