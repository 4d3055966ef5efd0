package store

import (
	"github.com/jcmexdev/topup-storefront/internal/store/domain"
)

// Reduce computes the state that follows action. It is pure: it reads no
// clock, performs no I/O and never writes to the slices of state. Collections
// the action does not touch are shared with the input, and actions that
// change nothing (unknown kinds, ids that are not present) return state as is.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddToCart:
		return addToCart(state, a)
	case UpdateCartQuantity:
		return updateCartQuantity(state, a)
	case RemoveFromCart:
		return removeFromCart(state, a.ProductID)
	case ClearCart:
		state.Cart = nil
		return state
	case UpsertProduct:
		return upsertProduct(state, a.Product)
	case DeleteProduct:
		return deleteProduct(state, a.ProductID)
	case CreateOrder:
		return createOrder(state, a)
	case UpdateOrderStatus:
		return updateOrderStatus(state, a)
	case UpdatePaymentStatus:
		return updatePaymentStatus(state, a)
	case UpsertIntegration:
		return upsertIntegration(state, a.Provider)
	case UpdateIntegrationStatus:
		return updateIntegrationStatus(state, a)
	case AddIntegrationLog:
		state.IntegrationLogs = prepend(state.IntegrationLogs, a.Log)
		return state
	case UpsertUser:
		return upsertUser(state, a.User)
	default:
		return state
	}
}

func addToCart(state State, a AddToCart) State {
	cart := cloneSlice(state.Cart)
	if i := cartIndex(cart, a.ProductID); i >= 0 {
		cart[i].Quantity = domain.ClampQuantity(cart[i].Quantity + a.Quantity)
	} else {
		cart = append(cart, domain.CartItem{
			ProductID: a.ProductID,
			Quantity:  domain.ClampQuantity(a.Quantity),
		})
	}
	state.Cart = cart
	return state
}

func updateCartQuantity(state State, a UpdateCartQuantity) State {
	i := cartIndex(state.Cart, a.ProductID)
	if i < 0 {
		return state
	}
	if a.Quantity <= 0 {
		state.Cart = without(state.Cart, i)
		return state
	}
	cart := cloneSlice(state.Cart)
	cart[i].Quantity = domain.ClampQuantity(a.Quantity)
	state.Cart = cart
	return state
}

func removeFromCart(state State, productID string) State {
	if i := cartIndex(state.Cart, productID); i >= 0 {
		state.Cart = without(state.Cart, i)
	}
	return state
}

func upsertProduct(state State, product domain.Product) State {
	product = product.Clone()
	i := indexBy(state.Products, func(p domain.Product) bool { return p.ID == product.ID })
	if i >= 0 {
		products := cloneSlice(state.Products)
		products[i] = product
		state.Products = products
		return state
	}
	state.Products = prepend(state.Products, product)
	return state
}

func deleteProduct(state State, productID string) State {
	if i := indexBy(state.Products, func(p domain.Product) bool { return p.ID == productID }); i >= 0 {
		state.Products = without(state.Products, i)
	}
	if i := cartIndex(state.Cart, productID); i >= 0 {
		state.Cart = without(state.Cart, i)
	}
	return state
}

func createOrder(state State, a CreateOrder) State {
	state.Orders = prepend(state.Orders, a.Order.Clone())
	state.Payments = prepend(state.Payments, a.Payment)
	state.Cart = nil
	if a.Log != nil {
		state.IntegrationLogs = prepend(state.IntegrationLogs, *a.Log)
	}
	return state
}

func updateOrderStatus(state State, a UpdateOrderStatus) State {
	i := indexBy(state.Orders, func(o domain.Order) bool { return o.ID == a.OrderID })
	if i < 0 {
		return state
	}
	orders := cloneSlice(state.Orders)
	orders[i].Status = a.Status
	state.Orders = orders
	return state
}

func updatePaymentStatus(state State, a UpdatePaymentStatus) State {
	i := indexBy(state.Payments, func(p domain.Payment) bool { return p.ID == a.PaymentID })
	if i < 0 {
		return state
	}
	payments := cloneSlice(state.Payments)
	payments[i].Status = a.Status
	// UpdatedAt never moves backwards, even if the caller's clock does.
	if a.At.After(payments[i].UpdatedAt) {
		payments[i].UpdatedAt = a.At
	}
	state.Payments = payments
	return state
}

func upsertIntegration(state State, provider domain.IntegrationProvider) State {
	i := indexBy(state.Integrations, func(p domain.IntegrationProvider) bool { return p.ID == provider.ID })
	if i >= 0 {
		integrations := cloneSlice(state.Integrations)
		integrations[i] = provider
		state.Integrations = integrations
		return state
	}
	state.Integrations = appendCopy(state.Integrations, provider)
	return state
}

func updateIntegrationStatus(state State, a UpdateIntegrationStatus) State {
	i := indexBy(state.Integrations, func(p domain.IntegrationProvider) bool { return p.ID == a.ProviderID })
	if i >= 0 {
		integrations := cloneSlice(state.Integrations)
		integrations[i].Status = a.Status
		if !a.At.IsZero() {
			integrations[i].LastSync = a.At
		}
		state.Integrations = integrations
	}
	if a.Log != nil {
		state.IntegrationLogs = prepend(state.IntegrationLogs, *a.Log)
	}
	return state
}

func upsertUser(state State, user domain.User) State {
	user = user.Clone()
	i := indexBy(state.Users, func(u domain.User) bool { return u.ID == user.ID })
	if i >= 0 {
		users := cloneSlice(state.Users)
		users[i] = user
		state.Users = users
		return state
	}
	state.Users = appendCopy(state.Users, user)
	return state
}

func cartIndex(cart []domain.CartItem, productID string) int {
	return indexBy(cart, func(item domain.CartItem) bool { return item.ProductID == productID })
}

func indexBy[T any](in []T, match func(T) bool) int {
	for i, v := range in {
		if match(v) {
			return i
		}
	}
	return -1
}

// prepend returns a new slice with v in front of in.
func prepend[T any](in []T, v T) []T {
	out := make([]T, len(in)+1)
	out[0] = v
	copy(out[1:], in)
	return out
}

// appendCopy returns a new slice with v after in; in is never grown in place.
func appendCopy[T any](in []T, v T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return append(out, v)
}

// without returns a new slice lacking the element at i.
func without[T any](in []T, i int) []T {
	out := make([]T, 0, len(in)-1)
	out = append(out, in[:i]...)
	return append(out, in[i+1:]...)
}
