// Package domain holds the entities the storefront state is made of.
// Values are copied in and out of the store; nothing here is mutated in place
// once it has been handed to the store.
package domain

import "github.com/shopspring/decimal"

type StockStatus string

const (
	StockInStock  StockStatus = "in_stock"
	StockLimited  StockStatus = "limited"
	StockPreorder StockStatus = "preorder"
)

func (s StockStatus) Valid() bool {
	switch s {
	case StockInStock, StockLimited, StockPreorder:
		return true
	}
	return false
}

// Product is a purchasable credit bundle in the catalog.
type Product struct {
	ID           string
	Name         string
	Game         string
	Description  string
	Image        string
	Tags         []string
	Price        decimal.Decimal
	Currency     string
	DeliveryTime string
	Rating       float64
	Purchases    int
	AutoDelivery bool
	// Bonus is empty when the bundle carries no bonus.
	Bonus       string
	StockStatus StockStatus
}

// HasBonus reports whether the bundle advertises a bonus.
func (p Product) HasBonus() bool {
	return p.Bonus != ""
}

// Clone returns a copy that does not share the Tags backing array.
func (p Product) Clone() Product {
	p.Tags = cloneStrings(p.Tags)
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
