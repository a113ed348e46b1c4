package usecase

import (
	"context"
	"net/http"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/validator"
)

// 画像の保存・削除を約束（ディスク実装は infra/storage）
type ImageStore interface {
	Save(data []byte) (string, error)
	Delete(imageURL string) error
}

type ImageUsecase struct {
	store ImageStore
}

// DI
func NewImageUsecase(store ImageStore) *ImageUsecase {
	return &ImageUsecase{store: store}
}

type UploadImageOutput struct {
	URL string `json:"url"`
}

// Upload は検証→保存。検証エラーはネットワークを使う前に同期で返す。
func (u *ImageUsecase) Upload(ctx context.Context, data []byte) (UploadImageOutput, error) {
	if err := validator.ValidateImage(data); err != nil {
		switch err {
		case validator.ErrImageTooLarge:
			return UploadImageOutput{}, NewHTTPError(http.StatusBadRequest, "image size must be less than 5MB")
		default:
			return UploadImageOutput{}, NewHTTPError(http.StatusBadRequest, "please upload a valid image file (JPEG, PNG, WebP, or GIF)")
		}
	}

	url, err := u.store.Save(data)
	if err != nil {
		return UploadImageOutput{}, NewHTTPError(http.StatusInternalServerError, "upload failed")
	}

	return UploadImageOutput{URL: url}, nil
}

func (u *ImageUsecase) Delete(ctx context.Context, imageURL string) error {
	if imageURL == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid url")
	}
	if err := u.store.Delete(imageURL); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "delete failed")
	}
	return nil
}
