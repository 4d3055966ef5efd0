// Package store holds the storefront's single source of truth: catalog, cart,
// orders, payments, users, integration providers and their audit log.
//
// State only ever changes through Reduce, and only the Store calls Reduce.
// Every collection is keyed by a stable id and kept in display order
// (newest first for orders, payments, products added at runtime and logs).
package store

import "github.com/jcmexdev/topup-storefront/internal/store/domain"

// State is one snapshot of the storefront. Treat a State received from the
// Store as read-only; Store.Snapshot already hands out a private copy.
type State struct {
	Products        []domain.Product
	Cart            []domain.CartItem
	Orders          []domain.Order
	Users           []domain.User
	Payments        []domain.Payment
	Integrations    []domain.IntegrationProvider
	IntegrationLogs []domain.IntegrationActionLog
}

// Clone deep copies s so the result shares no memory with it.
func (s State) Clone() State {
	out := State{
		Cart:            cloneSlice(s.Cart),
		Payments:        cloneSlice(s.Payments),
		Integrations:    cloneSlice(s.Integrations),
		IntegrationLogs: cloneSlice(s.IntegrationLogs),
	}
	if s.Products != nil {
		out.Products = make([]domain.Product, len(s.Products))
		for i, p := range s.Products {
			out.Products[i] = p.Clone()
		}
	}
	if s.Orders != nil {
		out.Orders = make([]domain.Order, len(s.Orders))
		for i, o := range s.Orders {
			out.Orders[i] = o.Clone()
		}
	}
	if s.Users != nil {
		out.Users = make([]domain.User, len(s.Users))
		for i, u := range s.Users {
			out.Users[i] = u.Clone()
		}
	}
	return out
}

// FindProduct returns the catalog entry with the given id.
func (s State) FindProduct(id string) (domain.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s State) FindOrder(id string) (domain.Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (s State) FindPayment(id string) (domain.Payment, bool) {
	for _, p := range s.Payments {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Payment{}, false
}

func (s State) FindIntegration(id string) (domain.IntegrationProvider, bool) {
	for _, p := range s.Integrations {
		if p.ID == id {
			return p, true
		}
	}
	return domain.IntegrationProvider{}, false
}

func (s State) FindUser(id string) (domain.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
