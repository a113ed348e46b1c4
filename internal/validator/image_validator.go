package validator

import (
	"errors"
	"net/http"
)

var (
	// 許可していない画像形式
	ErrInvalidImageType = errors.New("invalid image type")

	// 5MB超
	ErrImageTooLarge = errors.New("image too large")
)

// アップロード上限（5MB）
const MaxImageSize = 5 * 1024 * 1024

// 許可するMIMEタイプ（JPEG / PNG / WebP / GIF）
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ValidateImage はアップロード前の同期チェック。
// MIMEは申告値ではなく中身の先頭バイトから判定する。
func ValidateImage(data []byte) error {
	if len(data) > MaxImageSize {
		return ErrImageTooLarge
	}

	contentType := http.DetectContentType(data)
	if !allowedImageTypes[contentType] {
		return ErrInvalidImageType
	}

	return nil
}
