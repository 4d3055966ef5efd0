package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jcmexdev/topup-storefront/internal/checkout"
	"github.com/jcmexdev/topup-storefront/internal/store/domain"
	"github.com/jcmexdev/topup-storefront/internal/store/idgen"
)

// ErrStoreNotInitialized is the panic value raised when a Store method is
// called on a Store that was not built with New.
var ErrStoreNotInitialized = errors.New("store: not initialised, construct it with store.New")

// Receipt identifies the order and payment a successful checkout created.
type Receipt struct {
	OrderID   string
	PaymentID string
}

type Option func(*Store)

// WithIDGenerator replaces the generator used for order, payment, transaction
// and log ids.
func WithIDGenerator(g idgen.Generator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithClock replaces the wall clock used to stamp new entities.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type subscriber struct {
	id int
	fn func(State)
}

// Store owns the current State and is the only writer of it. Every action
// method applies exactly one transition through Reduce and then notifies
// subscribers with the new snapshot.
//
// Action methods are serialised, so a Store may be shared between goroutines.
// Subscribers run on the dispatching goroutine after the state has been
// replaced; they must not call action methods themselves.
type Store struct {
	dispatchMu sync.Mutex // single writer

	mu    sync.RWMutex // guards state for readers
	state State

	subMu       sync.Mutex
	subscribers []subscriber
	nextSubID   int

	ids    idgen.Generator
	now    func() time.Time
	logger *slog.Logger

	meter   metric.Meter
	metrics storeMetrics

	ready bool
}

// New builds a Store holding a private copy of initial.
func New(initial State, opts ...Option) *Store {
	s := &Store{
		state:  initial.Clone(),
		ids:    idgen.New(),
		now:    time.Now,
		logger: slog.Default(),
		ready:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.initMetrics()
	return s
}

func (s *Store) mustBeReady() {
	if s == nil || !s.ready {
		panic(ErrStoreNotInitialized)
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mustBeReady()

	s.mu.RLock()
	current := s.state
	s.mu.RUnlock()

	// Held slices are never written after publication, so copying outside
	// the lock is safe.
	return current.Clone()
}

// Subscribe registers fn to receive a snapshot after every transition. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.mustBeReady()
	if fn == nil {
		return func() {}
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = without(s.subscribers, i)
					return
				}
			}
		})
	}
}

func (s *Store) dispatch(action Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.apply(action)
}

// apply must be called with dispatchMu held.
func (s *Store) apply(action Action) {
	next := Reduce(s.state, action)

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	s.logger.Debug("store: action applied", "action", action.ActionType())
	s.metrics.actionApplied(action.ActionType())
	s.notify(next)
}

func (s *Store) notify(next State) {
	s.subMu.Lock()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(next.Clone())
	}
}

// AddToCart adds quantity units of the product, capping the line at ten.
func (s *Store) AddToCart(productID string, quantity int) {
	s.mustBeReady()
	s.dispatch(AddToCart{ProductID: productID, Quantity: quantity})
}

// UpdateCartQuantity sets the line quantity; zero or less removes the line.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mustBeReady()
	s.dispatch(UpdateCartQuantity{ProductID: productID, Quantity: quantity})
}

func (s *Store) RemoveFromCart(productID string) {
	s.mustBeReady()
	s.dispatch(RemoveFromCart{ProductID: productID})
}

func (s *Store) ClearCart() {
	s.mustBeReady()
	s.dispatch(ClearCart{})
}

// Checkout converts the cart into an order, a pending payment and a queued
// top-up log in one transition. It returns false, and changes nothing, when
// the cart is empty or none of its entries resolve to a product.
func (s *Store) Checkout(details domain.CheckoutDetails) (Receipt, bool) {
	s.mustBeReady()

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	current := s.state
	result, err := checkout.Plan(checkout.Input{
		Cart:     current.Cart,
		Products: current.Products,
		Details:  details,
		IDs:      s.ids,
		Now:      s.now(),
	}, s.logger)
	if err != nil {
		s.logger.Info("store: checkout did nothing", "reason", err.Error(), "cart_items", len(current.Cart))
		s.metrics.checkoutAttempted("rejected")
		return Receipt{}, false
	}

	log := result.Log
	s.apply(CreateOrder{Order: result.Order, Payment: result.Payment, Log: &log})
	s.metrics.checkoutAttempted("created")

	s.logger.Info("store: order created",
		"order_id", result.Order.ID,
		"payment_id", result.Payment.ID,
		"total", result.Order.Total.StringFixed(2),
		"currency", result.Order.Currency,
	)
	return Receipt{OrderID: result.Order.ID, PaymentID: result.Payment.ID}, true
}

// UpsertProduct replaces the product with the same id or adds it as the newest.
func (s *Store) UpsertProduct(product domain.Product) {
	s.mustBeReady()
	s.dispatch(UpsertProduct{Product: product})
}

// DeleteProduct removes the product from the catalog and from the cart.
func (s *Store) DeleteProduct(productID string) {
	s.mustBeReady()
	s.dispatch(DeleteProduct{ProductID: productID})
}

func (s *Store) UpdateOrderStatus(orderID string, status domain.OrderStatus) {
	s.mustBeReady()
	s.dispatch(UpdateOrderStatus{OrderID: orderID, Status: status})
}

func (s *Store) UpdatePaymentStatus(paymentID string, status domain.PaymentStatus) {
	s.mustBeReady()
	s.dispatch(UpdatePaymentStatus{PaymentID: paymentID, Status: status, At: s.now().UTC()})
}

func (s *Store) UpsertIntegration(provider domain.IntegrationProvider) {
	s.mustBeReady()
	s.dispatch(UpsertIntegration{Provider: provider})
}

// UpdateIntegrationStatus moves the provider to status and records a
// verification log: done when the provider comes online, queued otherwise.
func (s *Store) UpdateIntegrationStatus(providerID string, status domain.IntegrationStatus) {
	s.mustBeReady()

	logStatus := domain.LogQueued
	if status == domain.IntegrationOnline {
		logStatus = domain.LogDone
	}
	s.setIntegrationStatus(providerID, status, logStatus,
		fmt.Sprintf("Integration status updated to %s.", status))
}

// LogIntegrationAction records log as the newest audit entry.
func (s *Store) LogIntegrationAction(log domain.IntegrationActionLog) {
	s.mustBeReady()
	s.dispatch(AddIntegrationLog{Log: log})
}

// TriggerIntegrationSync brings the provider online and records the manual
// sync as in progress.
func (s *Store) TriggerIntegrationSync(providerID string) {
	s.mustBeReady()
	s.setIntegrationStatus(providerID, domain.IntegrationOnline, domain.LogInProgress,
		"Manual synchronisation started from the admin panel.")
}

func (s *Store) setIntegrationStatus(providerID string, status domain.IntegrationStatus, logStatus domain.LogStatus, details string) {
	now := s.now().UTC()
	log := domain.IntegrationActionLog{
		ID:         s.ids.NewID(idgen.PrefixLog),
		ProviderID: providerID,
		Type:       domain.LogVerification,
		Status:     logStatus,
		CreatedAt:  now,
		Details:    details,
	}
	s.dispatch(UpdateIntegrationStatus{ProviderID: providerID, Status: status, At: now, Log: &log})
}

// UpdateUser replaces the user with the same id or appends it.
func (s *Store) UpdateUser(user domain.User) {
	s.mustBeReady()
	s.dispatch(UpsertUser{User: user})
}
