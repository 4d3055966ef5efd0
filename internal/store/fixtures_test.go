package store

import (
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/topup-storefront/internal/store/domain"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// steppingClock returns a clock that advances one second per call.
func steppingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}
}

func testProduct(id, price, currency string) domain.Product {
	return domain.Product{
		ID:           id,
		Name:         "Bundle " + id,
		Game:         "Genshin Impact",
		Description:  "Genesis crystals",
		Tags:         []string{"popular"},
		Price:        decimal.RequireFromString(price),
		Currency:     currency,
		DeliveryTime: "Instant",
		Rating:       4.9,
		Purchases:    100,
		AutoDelivery: true,
		StockStatus:  domain.StockInStock,
	}
}

func testState() State {
	return State{
		Products: []domain.Product{
			testProduct("A", "5.00", "USD"),
			testProduct("B", "12.49", "USD"),
		},
		Orders: []domain.Order{
			{
				ID:       "ORD-SEED-1",
				UserID:   "u1",
				Total:    decimal.RequireFromString("20.00"),
				Currency: "USD",
				Status:   domain.OrderCompleted,
				Items: []domain.OrderItem{
					{ProductID: "A", Name: "Bundle A", Quantity: 4, Price: decimal.RequireFromString("5.00")},
				},
			},
		},
		Users: []domain.User{
			{ID: "u1", Nickname: "kaz", Role: domain.RolePlayer, Status: domain.UserActive, FavoriteGames: []string{"Genshin Impact"}},
		},
		Payments: []domain.Payment{
			{
				ID:        "PAY-SEED-1",
				OrderID:   "ORD-SEED-1",
				Amount:    decimal.RequireFromString("20.00"),
				Currency:  "USD",
				Status:    domain.PaymentSucceeded,
				CreatedAt: baseTime.Add(-time.Hour),
				UpdatedAt: baseTime.Add(-time.Hour),
				RiskLevel: domain.RiskLow,
			},
		},
		Integrations: []domain.IntegrationProvider{
			{ID: "codashop", Name: "Codashop", Status: domain.IntegrationDegraded, LatencyMs: 420, SuccessRate: 97.5, LastSync: baseTime.Add(-time.Hour)},
		},
		IntegrationLogs: []domain.IntegrationActionLog{
			{ID: "LOG-SEED-1", ProviderID: "codashop", Type: domain.LogTopUp, Status: domain.LogDone, CreatedAt: baseTime.Add(-time.Hour)},
		},
	}
}
