package cart

import (
	"slices"
	"strings"
	"sync"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
)

// 識別キーの番兵値。バリエーション未選択は default、アドオン未選択は none。
const (
	noVariation = "default"
	noAddOns    = "none"
)

// 同一ラインとみなすかの判定キー。文字列連結ではなく値比較で持つ。
// アドオンは選択「ID集合」だけを見る（数量はキーに含めない）。
type lineKey struct {
	itemID      string
	variationID string
	addOnIDs    []string // ソート済み
}

func newLineKey(itemID string, variation *model.Variation, addOns []model.AddOn) lineKey {
	k := lineKey{itemID: itemID, variationID: noVariation}
	if variation != nil {
		k.variationID = variation.ID
	}
	for _, a := range addOns {
		k.addOnIDs = append(k.addOnIDs, a.ID)
	}
	slices.Sort(k.addOnIDs)
	return k
}

func (k lineKey) equal(o lineKey) bool {
	return k.itemID == o.itemID &&
		k.variationID == o.variationID &&
		slices.Equal(k.addOnIDs, o.addOnIDs)
}

// UI向けのラインID（例: "tea-default-none"）。表示と操作指定に使う。
func (k lineKey) lineID() string {
	addOns := noAddOns
	if len(k.addOnIDs) > 0 {
		addOns = strings.Join(k.addOnIDs, ",")
	}
	return k.itemID + "-" + k.variationID + "-" + addOns
}

// カートの1ライン。TotalPriceは数量を含まない1個あたりの価格。
type Line struct {
	ID                string            `json:"id"`
	Item              model.MenuItem    `json:"item"`
	Quantity          int               `json:"quantity"`
	SelectedVariation *model.Variation  `json:"selected_variation,omitempty"`
	SelectedAddOns    []model.AddOn     `json:"selected_add_ons,omitempty"`
	TotalPrice        float64           `json:"total_price"`

	key lineKey
}

// UnitPrice は1個あたりの価格を計算する純関数。
// 実効価格（未計算なら基本価格）にバリエーションとアドオン（選択数分）を加算する。
func UnitPrice(item model.MenuItem, variation *model.Variation, addOns []model.AddOn) float64 {
	price := item.BasePrice
	if item.EffectivePrice > 0 {
		price = item.EffectivePrice
	}
	if variation != nil {
		price += variation.Price
	}
	for _, a := range addOns {
		qty := a.Quantity
		if qty < 1 {
			qty = 1
		}
		price += a.Price * float64(qty)
	}
	return price
}

// Cart は1セッション分のカート。全操作は妥当な入力に対して失敗しない。
type Cart struct {
	mu    sync.Mutex
	lines []*Line
}

func New() *Cart {
	return &Cart{}
}

// Add はカートに追加する。同一キーのラインがあれば数量を加算、
// 無ければ追加時点の単価スナップショット付きでラインを作る。
func (c *Cart) Add(item model.MenuItem, quantity int, variation *model.Variation, addOns []model.AddOn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := newLineKey(item.ID, variation, addOns)
	for _, l := range c.lines {
		if l.key.equal(key) {
			l.Quantity += quantity
			return
		}
	}

	c.lines = append(c.lines, &Line{
		ID:                key.lineID(),
		Item:              item,
		Quantity:          quantity,
		SelectedVariation: variation,
		SelectedAddOns:    addOns,
		TotalPrice:        UnitPrice(item, variation, addOns),
		key:               key,
	})
}

// UpdateQuantity は数量を絶対値で設定する。0以下は削除。
// ラインが無い場合は黙って何もしない（UI側の取り残し操作を許容）。
func (c *Cart) UpdateQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		c.Remove(lineID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range c.lines {
		if l.ID == lineID {
			l.Quantity = quantity
			return
		}
	}
}

// Remove は指定ラインを削除する。無ければ何もしない。
func (c *Cart) Remove(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, l := range c.lines {
		if l.ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear は全ラインを無条件に消す。
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// TotalPrice は Σ(単価スナップショット × 数量)。空なら0。
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.TotalPrice * float64(l.Quantity)
	}
	return total
}

// TotalItems は数量の合計。空なら0。
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Lines は表示用に挿入順のコピーを返す。
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}
