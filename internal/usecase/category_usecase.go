package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	repo "github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

type CategoryListResponse struct {
	Categories []model.Category `json:"categories"`
}

// 一覧（sort_order昇順）。公開側は active のみ。
func (u *CategoryUsecase) ListCategories(ctx context.Context, includeInactive bool) (CategoryListResponse, error) {
	categories, err := u.categoryRepo.List(ctx, includeInactive)
	if err != nil {
		return CategoryListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return CategoryListResponse{Categories: categories}, nil
}

type CategoryInput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

func validateCategory(in CategoryInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return NewHTTPError(http.StatusBadRequest, "id required")
	}
	// "all" は全カテゴリ表示の予約語
	if in.ID == "all" {
		return NewHTTPError(http.StatusBadRequest, "reserved id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	return nil
}

// 作成後は全件リフェッチ（管理画面は非activeも見える）
func (u *CategoryUsecase) AdminCreateCategory(ctx context.Context, in CategoryInput) (CategoryListResponse, error) {
	if err := validateCategory(in); err != nil {
		return CategoryListResponse{}, err
	}

	_, err := u.categoryRepo.Create(ctx, model.Category{
		ID:        strings.TrimSpace(in.ID),
		Name:      strings.TrimSpace(in.Name),
		Icon:      in.Icon,
		SortOrder: in.SortOrder,
		Active:    in.Active,
	})
	if err != nil {
		return CategoryListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.ListCategories(ctx, true)
}

func (u *CategoryUsecase) AdminUpdateCategory(ctx context.Context, id string, in CategoryInput) (CategoryListResponse, error) {
	in.ID = id
	if err := validateCategory(in); err != nil {
		return CategoryListResponse{}, err
	}

	err := u.categoryRepo.Update(ctx, model.Category{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Icon:      in.Icon,
		SortOrder: in.SortOrder,
		Active:    in.Active,
	})
	if err == repo.ErrNotFound {
		return CategoryListResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CategoryListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.ListCategories(ctx, true)
}

func (u *CategoryUsecase) AdminDeleteCategory(ctx context.Context, id string) (CategoryListResponse, error) {
	if strings.TrimSpace(id) == "" {
		return CategoryListResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.categoryRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return CategoryListResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CategoryListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.ListCategories(ctx, true)
}
