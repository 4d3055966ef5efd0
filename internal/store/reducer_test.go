package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/topup-storefront/internal/store/domain"
)

func TestReduceAddToCart(t *testing.T) {
	tests := []struct {
		name     string
		cart     []domain.CartItem
		action   AddToCart
		expected []domain.CartItem
	}{
		{
			name:     "inserts new line",
			action:   AddToCart{ProductID: "A", Quantity: 2},
			expected: []domain.CartItem{{ProductID: "A", Quantity: 2}},
		},
		{
			name:     "increments existing line",
			cart:     []domain.CartItem{{ProductID: "A", Quantity: 2}},
			action:   AddToCart{ProductID: "A", Quantity: 3},
			expected: []domain.CartItem{{ProductID: "A", Quantity: 5}},
		},
		{
			name:     "caps increment at ten",
			cart:     []domain.CartItem{{ProductID: "A", Quantity: 4}},
			action:   AddToCart{ProductID: "A", Quantity: 11},
			expected: []domain.CartItem{{ProductID: "A", Quantity: 10}},
		},
		{
			name:     "caps insert at ten",
			action:   AddToCart{ProductID: "A", Quantity: 25},
			expected: []domain.CartItem{{ProductID: "A", Quantity: 10}},
		},
		{
			name:     "zero quantity insert becomes one",
			action:   AddToCart{ProductID: "A", Quantity: 0},
			expected: []domain.CartItem{{ProductID: "A", Quantity: 1}},
		},
		{
			name:     "appends after existing lines",
			cart:     []domain.CartItem{{ProductID: "A", Quantity: 1}},
			action:   AddToCart{ProductID: "B", Quantity: 1},
			expected: []domain.CartItem{{ProductID: "A", Quantity: 1}, {ProductID: "B", Quantity: 1}},
		},
		{
			name:     "does not validate product",
			action:   AddToCart{ProductID: "missing", Quantity: 1},
			expected: []domain.CartItem{{ProductID: "missing", Quantity: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := State{Cart: tt.cart}
			after := Reduce(before, tt.action)
			assert.Equal(t, tt.expected, after.Cart)
		})
	}
}

func TestReduceAddToCartAlwaysCapsAtTen(t *testing.T) {
	for q := 11; q <= 40; q++ {
		state := State{Cart: []domain.CartItem{{ProductID: "A", Quantity: 1}}}
		after := Reduce(state, AddToCart{ProductID: "A", Quantity: q})
		require.Equal(t, 10, after.Cart[0].Quantity, "quantity %d", q)
	}
}

func TestReduceAddToCartDoesNotTouchInput(t *testing.T) {
	before := State{Cart: []domain.CartItem{{ProductID: "A", Quantity: 2}}}
	_ = Reduce(before, AddToCart{ProductID: "A", Quantity: 1})

	assert.Equal(t, 2, before.Cart[0].Quantity)
}

func TestReduceUpdateCartQuantity(t *testing.T) {
	cart := []domain.CartItem{{ProductID: "A", Quantity: 3}, {ProductID: "B", Quantity: 1}}

	tests := []struct {
		name     string
		action   UpdateCartQuantity
		expected []domain.CartItem
	}{
		{"sets quantity", UpdateCartQuantity{ProductID: "A", Quantity: 7}, []domain.CartItem{{ProductID: "A", Quantity: 7}, {ProductID: "B", Quantity: 1}}},
		{"clamps to ten", UpdateCartQuantity{ProductID: "B", Quantity: 42}, []domain.CartItem{{ProductID: "A", Quantity: 3}, {ProductID: "B", Quantity: 10}}},
		{"zero removes", UpdateCartQuantity{ProductID: "A", Quantity: 0}, []domain.CartItem{{ProductID: "B", Quantity: 1}}},
		{"negative removes", UpdateCartQuantity{ProductID: "B", Quantity: -1}, []domain.CartItem{{ProductID: "A", Quantity: 3}}},
		{"absent is no-op", UpdateCartQuantity{ProductID: "Z", Quantity: 5}, cart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after := Reduce(State{Cart: cart}, tt.action)
			assert.Equal(t, tt.expected, after.Cart)
		})
	}
}

func TestReduceRemoveAndClearCart(t *testing.T) {
	state := State{Cart: []domain.CartItem{{ProductID: "A", Quantity: 3}, {ProductID: "B", Quantity: 1}}}

	removed := Reduce(state, RemoveFromCart{ProductID: "A"})
	assert.Equal(t, []domain.CartItem{{ProductID: "B", Quantity: 1}}, removed.Cart)

	noop := Reduce(state, RemoveFromCart{ProductID: "Z"})
	assert.Same(t, &state.Cart[0], &noop.Cart[0])

	once := Reduce(testState(), ClearCart{})
	twice := Reduce(once, ClearCart{})
	assert.Empty(t, once.Cart)
	assert.Equal(t, once, twice)
}

func TestReduceClearCartLeavesOtherCollections(t *testing.T) {
	state := testState()
	state.Cart = []domain.CartItem{{ProductID: "A", Quantity: 1}}

	after := Reduce(state, ClearCart{})

	assert.Empty(t, after.Cart)
	assert.Same(t, &state.Products[0], &after.Products[0])
	assert.Same(t, &state.Orders[0], &after.Orders[0])
	assert.Same(t, &state.IntegrationLogs[0], &after.IntegrationLogs[0])
}

func TestReduceUpsertProduct(t *testing.T) {
	state := testState()

	replacement := testProduct("A", "6.50", "EUR")
	replacement.Name = "Renamed"
	replacement.Tags = nil
	updated := Reduce(state, UpsertProduct{Product: replacement})
	require.Len(t, updated.Products, 2)
	assert.Equal(t, replacement, updated.Products[0], "full replacement, not a merge")
	assert.Equal(t, "Bundle A", state.Products[0].Name, "input untouched")

	added := Reduce(state, UpsertProduct{Product: testProduct("C", "1.00", "USD")})
	require.Len(t, added.Products, 3)
	assert.Equal(t, "C", added.Products[0].ID, "new products are prepended")
}

func TestReduceDeleteProductCascadesToCart(t *testing.T) {
	state := testState()
	state.Cart = []domain.CartItem{{ProductID: "A", Quantity: 2}, {ProductID: "B", Quantity: 1}}

	after := Reduce(state, DeleteProduct{ProductID: "A"})

	_, found := after.FindProduct("A")
	assert.False(t, found)
	assert.Equal(t, []domain.CartItem{{ProductID: "B", Quantity: 1}}, after.Cart)
	assert.Len(t, state.Products, 2, "input untouched")

	noop := Reduce(state, DeleteProduct{ProductID: "missing"})
	assert.Same(t, &state.Products[0], &noop.Products[0])
	assert.Same(t, &state.Cart[0], &noop.Cart[0])
}

func TestReduceCreateOrder(t *testing.T) {
	state := testState()
	state.Cart = []domain.CartItem{{ProductID: "A", Quantity: 2}}

	order := domain.Order{
		ID:       "ORD-NEW",
		UserID:   domain.GuestUserID,
		Total:    decimal.RequireFromString("10.00"),
		Currency: "USD",
		Status:   domain.OrderCreated,
		Items:    []domain.OrderItem{{ProductID: "A", Name: "Bundle A", Quantity: 2, Price: decimal.RequireFromString("5.00")}},
	}
	payment := domain.Payment{ID: "PAY-NEW", OrderID: "ORD-NEW", Amount: order.Total, Status: domain.PaymentPending}
	log := domain.IntegrationActionLog{ID: "LOG-NEW", Type: domain.LogTopUp, Status: domain.LogQueued}

	after := Reduce(state, CreateOrder{Order: order, Payment: payment, Log: &log})

	assert.Empty(t, after.Cart)
	require.Len(t, after.Orders, 2)
	assert.Equal(t, order, after.Orders[0], "round trip yields the constructed order")
	assert.Equal(t, payment, after.Payments[0])
	assert.Equal(t, log, after.IntegrationLogs[0])
	assert.Len(t, after.IntegrationLogs, 2)

	withoutLog := Reduce(state, CreateOrder{Order: order, Payment: payment})
	assert.Len(t, withoutLog.IntegrationLogs, 1)
	assert.Same(t, &state.IntegrationLogs[0], &withoutLog.IntegrationLogs[0])
}

func TestReduceUpdateOrderStatusIsUnconstrained(t *testing.T) {
	state := testState()

	cancelled := Reduce(state, UpdateOrderStatus{OrderID: "ORD-SEED-1", Status: domain.OrderCancelled})
	assert.Equal(t, domain.OrderCancelled, cancelled.Orders[0].Status)

	back := Reduce(cancelled, UpdateOrderStatus{OrderID: "ORD-SEED-1", Status: domain.OrderCreated})
	assert.Equal(t, domain.OrderCreated, back.Orders[0].Status)
	assert.Equal(t, state.Orders[0].Total, back.Orders[0].Total, "only status changes")

	assert.Equal(t, domain.OrderCompleted, state.Orders[0].Status, "input untouched")
}

func TestReduceUpdatePaymentStatus(t *testing.T) {
	state := testState()
	prior := state.Payments[0].UpdatedAt

	later := prior.Add(time.Minute)
	refunded := Reduce(state, UpdatePaymentStatus{PaymentID: "PAY-SEED-1", Status: domain.PaymentRefunded, At: later})
	assert.Equal(t, domain.PaymentRefunded, refunded.Payments[0].Status)
	assert.Equal(t, later, refunded.Payments[0].UpdatedAt)

	skewed := Reduce(state, UpdatePaymentStatus{PaymentID: "PAY-SEED-1", Status: domain.PaymentFailed, At: prior.Add(-time.Hour)})
	assert.Equal(t, domain.PaymentFailed, skewed.Payments[0].Status)
	assert.False(t, skewed.Payments[0].UpdatedAt.Before(prior))

	noop := Reduce(state, UpdatePaymentStatus{PaymentID: "missing", Status: domain.PaymentFailed, At: later})
	assert.Same(t, &state.Payments[0], &noop.Payments[0])
}

func TestReduceIntegrations(t *testing.T) {
	state := testState()

	added := Reduce(state, UpsertIntegration{Provider: domain.IntegrationProvider{ID: "unipin", Name: "UniPin"}})
	require.Len(t, added.Integrations, 2)
	assert.Equal(t, "unipin", added.Integrations[1].ID, "new providers are appended")

	replaced := Reduce(state, UpsertIntegration{Provider: domain.IntegrationProvider{ID: "codashop", Name: "Codashop v2"}})
	require.Len(t, replaced.Integrations, 1)
	assert.Equal(t, "Codashop v2", replaced.Integrations[0].Name)

	log := domain.IntegrationActionLog{ID: "LOG-X", ProviderID: "codashop", Status: domain.LogDone}
	online := Reduce(state, UpdateIntegrationStatus{ProviderID: "codashop", Status: domain.IntegrationOnline, At: baseTime, Log: &log})
	assert.Equal(t, domain.IntegrationOnline, online.Integrations[0].Status)
	assert.Equal(t, baseTime, online.Integrations[0].LastSync)
	assert.Equal(t, "LOG-X", online.IntegrationLogs[0].ID)

	appended := Reduce(state, AddIntegrationLog{Log: domain.IntegrationActionLog{ID: "LOG-Y"}})
	assert.Equal(t, "LOG-Y", appended.IntegrationLogs[0].ID, "logs are newest first")
	assert.Len(t, appended.IntegrationLogs, 2)
}

func TestReduceUpsertUser(t *testing.T) {
	state := testState()

	user := state.Users[0]
	user.Status = domain.UserSuspended
	user.FavoriteGames = []string{"Valorant"}
	updated := Reduce(state, UpsertUser{User: user})
	require.Len(t, updated.Users, 1)
	assert.Equal(t, domain.UserSuspended, updated.Users[0].Status)
	assert.Equal(t, domain.UserActive, state.Users[0].Status, "input untouched")

	user.FavoriteGames[0] = "mutated after dispatch"
	assert.Equal(t, "Valorant", updated.Users[0].FavoriteGames[0])

	added := Reduce(state, UpsertUser{User: domain.User{ID: "u2", Status: domain.UserNew}})
	require.Len(t, added.Users, 2)
	assert.Equal(t, "u2", added.Users[1].ID, "new users are appended")
}

type unknownAction struct{}

func (unknownAction) ActionType() string { return "SOMETHING_ELSE" }

func TestReduceUnknownActionIsNoop(t *testing.T) {
	state := testState()
	state.Cart = []domain.CartItem{{ProductID: "A", Quantity: 1}}

	after := Reduce(state, unknownAction{})

	assert.Equal(t, state, after)
	assert.Same(t, &state.Products[0], &after.Products[0])
	assert.Same(t, &state.Cart[0], &after.Cart[0])
	assert.Same(t, &state.Orders[0], &after.Orders[0])
	assert.Same(t, &state.Users[0], &after.Users[0])
	assert.Same(t, &state.Payments[0], &after.Payments[0])
	assert.Same(t, &state.Integrations[0], &after.Integrations[0])
	assert.Same(t, &state.IntegrationLogs[0], &after.IntegrationLogs[0])
}
