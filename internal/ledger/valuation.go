package ledger

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CraftLedger_Go/internal/domain"
)

// CategoryValue is the stock value of one category
type CategoryValue struct {
	Category string          `json:"category"`
	Units    int             `json:"units"`
	Value    decimal.Decimal `json:"value"`
}

// Valuation is the price x amount total of all stock, overall and per category
type Valuation struct {
	Total      decimal.Decimal `json:"total"`
	Units      int             `json:"units"`
	Categories []CategoryValue `json:"categories"`
}

// Value computes a valuation from a catalog and inventory. Categories that
// differ only in case or surrounding space are folded together.
func Value(items []domain.Item, records []domain.InventoryRecord) Valuation {
	byID := make(map[int]domain.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	caser := cases.Title(language.English)
	groups := make(map[string]*CategoryValue)
	v := Valuation{Total: decimal.Zero, Categories: []CategoryValue{}}

	for _, rec := range records {
		if rec.Amount <= 0 {
			continue
		}
		item, ok := byID[rec.ItemID]
		label := UncategorizedLabel
		if ok && strings.TrimSpace(item.Category) != "" {
			label = caser.String(strings.TrimSpace(item.Category))
		}

		line := decimal.NewFromInt(int64(item.Price)).Mul(decimal.NewFromInt(int64(rec.Amount)))

		g, exists := groups[label]
		if !exists {
			g = &CategoryValue{Category: label, Value: decimal.Zero}
			groups[label] = g
		}
		g.Units += rec.Amount
		g.Value = g.Value.Add(line)

		v.Units += rec.Amount
		v.Total = v.Total.Add(line)
	}

	for _, g := range groups {
		v.Categories = append(v.Categories, *g)
	}
	sort.Slice(v.Categories, func(i, j int) bool {
		return v.Categories[i].Category < v.Categories[j].Category
	})
	return v
}

// Valuation values current stock at current catalog prices
func (s *service) Valuation(ctx context.Context) Valuation {
	return Value(s.ListItems(ctx), s.ListInventory(ctx))
}
