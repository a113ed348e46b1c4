package storage

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// 長辺の上限。これを超える画像は縮小して保存する。
	maxDimension = 1600
	jpegQuality  = 85
)

// ローカルディスクに保存する画像ストレージ。
// 保存した画像は /uploads/ 配下の静的ファイルとして配信される。
type DiskImageStore struct {
	dir     string
	baseURL string
}

func NewDiskImageStore(dir string, baseURL string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskImageStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save は画像をデコードして検証し、必要なら縮小してJPEGで保存する。
// 保存形式は入力形式によらずJPEG固定。
func (s *DiskImageStore) Save(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	name := uuid.NewString() + ".jpg"
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if err := imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		// 書きかけのファイルは残さない
		os.Remove(dst)
		return "", fmt.Errorf("encode image: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}

// Delete はURLからファイル名を取り出して削除する。
// ディレクトリ外を指すパスは拒否する。
func (s *DiskImageStore) Delete(imageURL string) error {
	u, err := url.Parse(imageURL)
	if err != nil {
		return fmt.Errorf("parse image url: %w", err)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || strings.Contains(name, "..") {
		return fmt.Errorf("invalid image url: %s", imageURL)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
