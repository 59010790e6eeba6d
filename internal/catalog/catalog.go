// Package catalog holds the fixed demo product data and the
// filter/sort pipeline that powers product browsing.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pricecart/pricecart/internal/model"
)

// Sort options accepted by Filter.
const (
	SortNameAsc  = "name-asc"
	SortNameDesc = "name-desc"
)

// CategoryAll is the label that disables category filtering.
const CategoryAll = "All Products"

// CategoryLabels lists the browsing categories in display order.
var CategoryLabels = []string{
	"All Products",
	"Fruits",
	"Vegetables",
	"Drinks & Beverages",
	"Pantry",
	"Dairy & Eggs",
	"Bakery",
	"Meat & Seafood",
	"Kitchen Utensils",
}

// categoryTags maps display labels to the tag stored on products. Labels
// not present here map to themselves.
var categoryTags = map[string]string{
	"All Products":       "All",
	"Fruits":             "Fruits",
	"Vegetables":         "Vegetables",
	"Drinks & Beverages": "Drinks",
	"Pantry":             "Pantry",
	"Dairy & Eggs":       "Dairy",
	"Bakery":             "Bakery",
	"Meat & Seafood":     "Meat",
	"Kitchen Utensils":   "Utensils",
}

var nameCollator = collate.New(language.English, collate.IgnoreCase)

// CategoryTag resolves a display label to its product tag. Unknown labels
// fall through unchanged so ad-hoc tags still filter.
func CategoryTag(label string) string {
	if tag, ok := categoryTags[label]; ok {
		return tag
	}
	return label
}

// Items returns a fresh copy of the full catalog. Store price slices are
// copied too so callers can rewrite distances without touching the seed
// data.
func Items() []model.Product {
	out := make([]model.Product, len(products))
	for i, p := range products {
		out[i] = p
		out[i].StorePrices = make([]model.StorePrice, len(p.StorePrices))
		copy(out[i].StorePrices, p.StorePrices)
	}
	return out
}

// ProductByID returns a copy of the product with the given id, or nil.
func ProductByID(id int64) *model.Product {
	for _, p := range products {
		if p.ID == id {
			c := p
			c.StorePrices = make([]model.StorePrice, len(p.StorePrices))
			copy(c.StorePrices, p.StorePrices)
			return &c
		}
	}
	return nil
}

// Query describes one pass of the browsing pipeline. Zero values mean
// "no restriction" at each stage.
type Query struct {
	Category string   // display label or tag; "" and "All Products" pass everything
	Search   string   // case-insensitive substring on product name
	Stores   []string // keep products priced at at least one of these stores
	Sort     string   // SortNameAsc or SortNameDesc; anything else preserves order
}

// Filter runs category, search, store, then sort over items, in that
// order. Each stage with a zero-valued input is skipped. The input slice
// is never modified.
func Filter(items []model.Product, q Query) []model.Product {
	out := make([]model.Product, len(items))
	copy(out, items)

	if tag := CategoryTag(q.Category); q.Category != "" && tag != "All" {
		filtered := out[:0]
		for _, p := range out {
			if p.Category == tag {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		filtered := out[:0]
		for _, p := range out {
			if strings.Contains(strings.ToLower(p.Name), term) {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	if len(q.Stores) > 0 {
		selected := make(map[string]bool, len(q.Stores))
		for _, s := range q.Stores {
			selected[s] = true
		}
		filtered := out[:0]
		for _, p := range out {
			for _, sp := range p.StorePrices {
				if selected[sp.Store] {
					filtered = append(filtered, p)
					break
				}
			}
		}
		out = filtered
	}

	switch q.Sort {
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[j].Name, out[i].Name) < 0
		})
	}

	return out
}

// StorePricesFor returns the product's store prices restricted to the
// selected stores (all of them when none are selected), cheapest first.
func StorePricesFor(p *model.Product, stores []string) []model.StorePrice {
	out := make([]model.StorePrice, 0, len(p.StorePrices))
	if len(stores) == 0 {
		out = append(out, p.StorePrices...)
	} else {
		selected := make(map[string]bool, len(stores))
		for _, s := range stores {
			selected[s] = true
		}
		for _, sp := range p.StorePrices {
			if selected[sp.Store] {
				out = append(out, sp)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}
