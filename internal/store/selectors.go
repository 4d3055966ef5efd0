package store

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/topup-storefront/internal/store/domain"
)

// CartLine is a cart entry joined with its live product.
type CartLine struct {
	Product  domain.Product
	Quantity int
	Subtotal decimal.Decimal
}

type CartSummary struct {
	Lines     []CartLine
	ItemCount int
	Subtotal  decimal.Decimal
}

// CartLines resolves the cart against the catalog. Entries whose product has
// been deleted are left out.
func CartLines(state State) []CartLine {
	lines := make([]CartLine, 0, len(state.Cart))
	for _, item := range state.Cart {
		product, ok := state.FindProduct(item.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, CartLine{
			Product:  product.Clone(),
			Quantity: item.Quantity,
			Subtotal: product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return lines
}

func SummarizeCart(state State) CartSummary {
	summary := CartSummary{Lines: CartLines(state), Subtotal: decimal.Zero}
	for _, line := range summary.Lines {
		summary.ItemCount += line.Quantity
		summary.Subtotal = summary.Subtotal.Add(line.Subtotal)
	}
	summary.Subtotal = summary.Subtotal.Round(2)
	return summary
}

// Games lists the distinct games in catalog order.
func Games(state State) []string {
	seen := make(map[string]struct{}, len(state.Products))
	var games []string
	for _, p := range state.Products {
		if _, ok := seen[p.Game]; ok {
			continue
		}
		seen[p.Game] = struct{}{}
		games = append(games, p.Game)
	}
	return games
}

type CatalogSort string

const (
	SortPopular   CatalogSort = "popular"
	SortPriceAsc  CatalogSort = "price-asc"
	SortPriceDesc CatalogSort = "price-desc"
)

// CatalogQuery narrows and orders the catalog. Zero value lists everything
// by popularity.
type CatalogQuery struct {
	Search string
	Game   string

	AutoDeliveryOnly bool
	BonusOnly        bool
	// LimitedOnly keeps products that are not plainly in stock.
	LimitedOnly bool

	Sort CatalogSort
}

func (q CatalogQuery) matches(p domain.Product, term string) bool {
	if term != "" &&
		!strings.Contains(strings.ToLower(p.Name), term) &&
		!strings.Contains(strings.ToLower(p.Game), term) &&
		!strings.Contains(strings.ToLower(p.Description), term) {
		return false
	}
	if q.Game != "" && p.Game != q.Game {
		return false
	}
	if q.AutoDeliveryOnly && !p.AutoDelivery {
		return false
	}
	if q.BonusOnly && !p.HasBonus() {
		return false
	}
	if q.LimitedOnly && p.StockStatus == domain.StockInStock {
		return false
	}
	return true
}

// FilterCatalog returns copies of the matching products in the requested order.
func FilterCatalog(state State, q CatalogQuery) []domain.Product {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Product, 0, len(state.Products))
	for _, p := range state.Products {
		if q.matches(p, term) {
			out = append(out, p.Clone())
		}
	}

	switch q.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return a.Price.Cmp(b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return b.Price.Cmp(a.Price) })
	default:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return b.Purchases - a.Purchases })
	}
	return out
}

// OverviewStats are the headline numbers of the admin console.
type OverviewStats struct {
	TotalOrders int
	// TotalRevenue sums processing and completed orders. Currencies are not
	// converted.
	TotalRevenue       decimal.Decimal
	PendingPayments    int
	ActiveCustomers    int
	ActiveIntegrations int
}

func Overview(state State) OverviewStats {
	stats := OverviewStats{TotalOrders: len(state.Orders), TotalRevenue: decimal.Zero}
	for _, o := range state.Orders {
		if o.Status == domain.OrderProcessing || o.Status == domain.OrderCompleted {
			stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		}
	}
	for _, p := range state.Payments {
		if p.Status != domain.PaymentSucceeded {
			stats.PendingPayments++
		}
	}
	for _, u := range state.Users {
		if u.Status == domain.UserActive {
			stats.ActiveCustomers++
		}
	}
	for _, i := range state.Integrations {
		if i.Status == domain.IntegrationOnline {
			stats.ActiveIntegrations++
		}
	}
	return stats
}
