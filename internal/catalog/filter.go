package catalog

import (
	"strings"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"

	"golang.org/x/text/cases"
)

// 全カテゴリを意味するカテゴリID。
const CategoryAll = "all"

var fold = cases.Fold()

// Filter はカテゴリと検索語で絞り込む。両方は積で合成する。
// 検索語はトリム後の大文字小文字無視の部分一致（名前・説明が対象）。
// 空の結果は正常な表示状態であってエラーではない。
func Filter(items []model.MenuItem, categoryID string, search string) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))

	term := strings.TrimSpace(search)
	foldedTerm := ""
	if term != "" {
		foldedTerm = fold.String(term)
	}

	for _, item := range items {
		if categoryID != CategoryAll && item.CategoryID != categoryID {
			continue
		}
		if foldedTerm != "" && !matches(item, foldedTerm) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches(item model.MenuItem, foldedTerm string) bool {
	return strings.Contains(fold.String(item.Name), foldedTerm) ||
		strings.Contains(fold.String(item.Description), foldedTerm)
}
