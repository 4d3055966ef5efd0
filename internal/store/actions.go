package store

import (
	"time"

	"github.com/jcmexdev/topup-storefront/internal/store/domain"
)

// Action is a request to transition the state. The set is open: Reduce
// ignores any action it does not know.
type Action interface {
	ActionType() string
}

// --- Cart ---

type AddToCart struct {
	ProductID string
	Quantity  int
}

func (AddToCart) ActionType() string { return "ADD_TO_CART" }

type UpdateCartQuantity struct {
	ProductID string
	Quantity  int
}

func (UpdateCartQuantity) ActionType() string { return "UPDATE_CART_QUANTITY" }

type RemoveFromCart struct {
	ProductID string
}

func (RemoveFromCart) ActionType() string { return "REMOVE_FROM_CART" }

type ClearCart struct{}

func (ClearCart) ActionType() string { return "CLEAR_CART" }

// --- Catalog ---

type UpsertProduct struct {
	Product domain.Product
}

func (UpsertProduct) ActionType() string { return "UPSERT_PRODUCT" }

// DeleteProduct removes the product and every cart entry pointing at it.
type DeleteProduct struct {
	ProductID string
}

func (DeleteProduct) ActionType() string { return "DELETE_PRODUCT" }

// --- Orders and payments ---

// CreateOrder records a checkout: order, payment and optional log land
// together and the cart is emptied in the same transition.
type CreateOrder struct {
	Order   domain.Order
	Payment domain.Payment
	Log     *domain.IntegrationActionLog
}

func (CreateOrder) ActionType() string { return "CREATE_ORDER" }

type UpdateOrderStatus struct {
	OrderID string
	Status  domain.OrderStatus
}

func (UpdateOrderStatus) ActionType() string { return "UPDATE_ORDER_STATUS" }

// UpdatePaymentStatus carries the time of the change; Reduce never reads a clock.
type UpdatePaymentStatus struct {
	PaymentID string
	Status    domain.PaymentStatus
	At        time.Time
}

func (UpdatePaymentStatus) ActionType() string { return "UPDATE_PAYMENT_STATUS" }

// --- Integrations ---

type UpsertIntegration struct {
	Provider domain.IntegrationProvider
}

func (UpsertIntegration) ActionType() string { return "UPSERT_INTEGRATION" }

type UpdateIntegrationStatus struct {
	ProviderID string
	Status     domain.IntegrationStatus
	At         time.Time
	Log        *domain.IntegrationActionLog
}

func (UpdateIntegrationStatus) ActionType() string { return "UPDATE_INTEGRATION_STATUS" }

type AddIntegrationLog struct {
	Log domain.IntegrationActionLog
}

func (AddIntegrationLog) ActionType() string { return "ADD_INTEGRATION_LOG" }

// --- Users ---

type UpsertUser struct {
	User domain.User
}

func (UpsertUser) ActionType() string { return "UPSERT_USER" }
