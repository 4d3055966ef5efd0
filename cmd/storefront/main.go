package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/jcmexdev/topup-storefront/internal/pkg/config"
	"github.com/jcmexdev/topup-storefront/internal/pkg/telemetry"
	"github.com/jcmexdev/topup-storefront/internal/seed"
	"github.com/jcmexdev/topup-storefront/internal/store"
	"github.com/jcmexdev/topup-storefront/internal/store/domain"
)

func main() {
	logger := telemetry.InitLogger(slog.LevelInfo)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger = telemetry.InitLogger(cfg.LogLevel)

	initial, err := loadSeed(cfg)
	if err != nil {
		logger.Error("failed to load seed data", "error", err)
		os.Exit(1)
	}

	s := store.New(initial, store.WithLogger(logger))
	cancel := s.Subscribe(func(st store.State) {
		logger.Debug("state changed",
			"cart_items", len(st.Cart),
			"orders", len(st.Orders),
			"integration_logs", len(st.IntegrationLogs),
		)
	})
	defer cancel()

	if cfg.Scenario == config.ScenarioCheckout || cfg.Scenario == config.ScenarioAll {
		runCheckout(s, logger)
	}
	if cfg.Scenario == config.ScenarioAdmin || cfg.Scenario == config.ScenarioAll {
		runAdmin(s, logger)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summarize(s.Snapshot())); err != nil {
		logger.Error("failed to write summary", "error", err)
		os.Exit(1)
	}
}

func loadSeed(cfg config.Config) (store.State, error) {
	if cfg.SeedFile == "" {
		return seed.Default()
	}
	return seed.LoadFile(cfg.SeedFile)
}

// runCheckout plays a customer filling the cart and paying for it.
func runCheckout(s *store.Store, logger *slog.Logger) {
	catalog := store.FilterCatalog(s.Snapshot(), store.CatalogQuery{AutoDeliveryOnly: true})
	if len(catalog) == 0 {
		logger.Warn("no auto-delivery products to buy")
		return
	}

	first := catalog[0]
	s.AddToCart(first.ID, 2)
	if len(catalog) > 1 {
		s.AddToCart(catalog[1].ID, 1)
	}
	s.UpdateCartQuantity(first.ID, 3)

	cart := store.SummarizeCart(s.Snapshot())
	logger.Info("cart ready", "items", cart.ItemCount, "subtotal", cart.Subtotal.StringFixed(2))

	receipt, ok := s.Checkout(domain.CheckoutDetails{
		Email:          "player@example.com",
		PlayerID:       "812345671",
		PlayerNickname: "Akira",
		Region:         "Asia",
		Game:           first.Game,
		PaymentMethod:  "Card",
		PaymentChannel: "Visa",
		AutoDelivery:   true,
	})
	if !ok {
		logger.Warn("checkout did not create an order")
		return
	}

	s.UpdatePaymentStatus(receipt.PaymentID, domain.PaymentSucceeded)
	s.UpdateOrderStatus(receipt.OrderID, domain.OrderProcessing)
}

// runAdmin plays an operator working through the admin console.
func runAdmin(s *store.Store, logger *slog.Logger) {
	state := s.Snapshot()

	for _, provider := range state.Integrations {
		if provider.Status != domain.IntegrationOnline {
			logger.Info("resyncing provider", "provider_id", provider.ID, "status", provider.Status)
			s.TriggerIntegrationSync(provider.ID)
		}
	}

	for _, payment := range state.Payments {
		if payment.Status == domain.PaymentInReview {
			s.UpdatePaymentStatus(payment.ID, domain.PaymentSucceeded)
			s.UpdateOrderStatus(payment.OrderID, domain.OrderCompleted)
		}
	}

	for _, user := range state.Users {
		if user.Status == domain.UserNew {
			user.Status = domain.UserActive
			s.UpdateUser(user)
		}
	}
}

type summary struct {
	Orders             int      `json:"orders"`
	Revenue            string   `json:"revenue"`
	PendingPayments    int      `json:"pending_payments"`
	ActiveCustomers    int      `json:"active_customers"`
	ActiveIntegrations int      `json:"active_integrations"`
	CartItems          int      `json:"cart_items"`
	LatestOrder        string   `json:"latest_order,omitempty"`
	LatestLogs         []string `json:"latest_logs"`
}

func summarize(st store.State) summary {
	stats := store.Overview(st)
	out := summary{
		Orders:             stats.TotalOrders,
		Revenue:            stats.TotalRevenue.StringFixed(2),
		PendingPayments:    stats.PendingPayments,
		ActiveCustomers:    stats.ActiveCustomers,
		ActiveIntegrations: stats.ActiveIntegrations,
		CartItems:          store.SummarizeCart(st).ItemCount,
		LatestLogs:         []string{},
	}
	if len(st.Orders) > 0 {
		out.LatestOrder = st.Orders[0].ID
	}
	for i, log := range st.IntegrationLogs {
		if i == 5 {
			break
		}
		out.LatestLogs = append(out.LatestLogs, log.ID+" "+string(log.Status)+": "+log.Details)
	}
	return out
}
