package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jcmexdev/topup-storefront/internal/store"
	"github.com/jcmexdev/topup-storefront/internal/store/domain"
)

// --- scalar types ---

// money accepts a quoted or bare decimal scalar.
type money struct{ decimal.Decimal }

func (m *money) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected decimal, got %v", node.Line, node.Kind)
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	m.Decimal = d
	return nil
}

// timestamp accepts an RFC 3339 scalar and normalises it to UTC.
type timestamp struct{ time.Time }

func (t *timestamp) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected timestamp, got %v", node.Line, node.Kind)
	}
	parsed, err := time.Parse(time.RFC3339, node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	t.Time = parsed.UTC()
	return nil
}

// --- document ---

type document struct {
	Products        []productDoc     `yaml:"products"`
	Orders          []orderDoc       `yaml:"orders"`
	Users           []userDoc        `yaml:"users"`
	Payments        []paymentDoc     `yaml:"payments"`
	Integrations    []integrationDoc `yaml:"integrations"`
	IntegrationLogs []logDoc         `yaml:"integration_logs"`
}

type productDoc struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Game         string   `yaml:"game"`
	Description  string   `yaml:"description"`
	Image        string   `yaml:"image"`
	Tags         []string `yaml:"tags"`
	Price        money    `yaml:"price"`
	Currency     string   `yaml:"currency"`
	DeliveryTime string   `yaml:"delivery_time"`
	Rating       float64  `yaml:"rating"`
	Purchases    int      `yaml:"purchases"`
	AutoDelivery bool     `yaml:"auto_delivery"`
	Bonus        string   `yaml:"bonus"`
	StockStatus  string   `yaml:"stock_status"`
}

type orderItemDoc struct {
	ProductID string `yaml:"product_id"`
	Name      string `yaml:"name"`
	Quantity  int    `yaml:"quantity"`
	Price     money  `yaml:"price"`
}

type orderDoc struct {
	ID            string         `yaml:"id"`
	UserID        string         `yaml:"user_id"`
	PlayerID      string         `yaml:"player_id"`
	Game          string         `yaml:"game"`
	Region        string         `yaml:"region"`
	Notes         string         `yaml:"notes"`
	Total         money          `yaml:"total"`
	Currency      string         `yaml:"currency"`
	Status        string         `yaml:"status"`
	PaymentMethod string         `yaml:"payment_method"`
	CreatedAt     timestamp      `yaml:"created_at"`
	AutoDelivery  bool           `yaml:"auto_delivery"`
	Items         []orderItemDoc `yaml:"items"`
}

type userDoc struct {
	ID            string    `yaml:"id"`
	Nickname      string    `yaml:"nickname"`
	Email         string    `yaml:"email"`
	Role          string    `yaml:"role"`
	Status        string    `yaml:"status"`
	FavoriteGames []string  `yaml:"favorite_games"`
	TotalSpent    money     `yaml:"total_spent"`
	LastActive    timestamp `yaml:"last_active"`
}

type paymentDoc struct {
	ID            string    `yaml:"id"`
	OrderID       string    `yaml:"order_id"`
	Provider      string    `yaml:"provider"`
	Channel       string    `yaml:"channel"`
	Amount        money     `yaml:"amount"`
	Currency      string    `yaml:"currency"`
	Status        string    `yaml:"status"`
	TransactionID string    `yaml:"transaction_id"`
	CreatedAt     timestamp `yaml:"created_at"`
	UpdatedAt     timestamp `yaml:"updated_at"`
	RiskLevel     string    `yaml:"risk_level"`
}

type integrationDoc struct {
	ID           string    `yaml:"id"`
	Name         string    `yaml:"name"`
	Status       string    `yaml:"status"`
	LatencyMs    int       `yaml:"latency_ms"`
	SuccessRate  float64   `yaml:"success_rate"`
	LastSync     timestamp `yaml:"last_sync"`
	Instructions string    `yaml:"instructions"`
}

type logDoc struct {
	ID         string    `yaml:"id"`
	ProviderID string    `yaml:"provider_id"`
	Type       string    `yaml:"type"`
	Status     string    `yaml:"status"`
	CreatedAt  timestamp `yaml:"created_at"`
	Details    string    `yaml:"details"`
}

// --- conversion ---

type validator interface{ Valid() bool }

func checkEnum[T validator](kind, id string, v T) (T, error) {
	if !v.Valid() {
		return v, fmt.Errorf("seed: %s %s: invalid value %q", kind, id, fmt.Sprint(v))
	}
	return v, nil
}

func checkID(kind string, index int, id string) error {
	if id == "" {
		return fmt.Errorf("seed: %s #%d: %w", kind, index, ErrMissingID)
	}
	return nil
}

func (d document) state() (store.State, error) {
	var state store.State

	for i, p := range d.Products {
		if err := checkID("product", i, p.ID); err != nil {
			return store.State{}, err
		}
		stock, err := checkEnum("product", p.ID, domain.StockStatus(p.StockStatus))
		if err != nil {
			return store.State{}, err
		}
		state.Products = append(state.Products, domain.Product{
			ID:           p.ID,
			Name:         p.Name,
			Game:         p.Game,
			Description:  p.Description,
			Image:        p.Image,
			Tags:         p.Tags,
			Price:        p.Price.Decimal,
			Currency:     p.Currency,
			DeliveryTime: p.DeliveryTime,
			Rating:       p.Rating,
			Purchases:    p.Purchases,
			AutoDelivery: p.AutoDelivery,
			Bonus:        p.Bonus,
			StockStatus:  stock,
		})
	}

	for i, o := range d.Orders {
		if err := checkID("order", i, o.ID); err != nil {
			return store.State{}, err
		}
		status, err := checkEnum("order", o.ID, domain.OrderStatus(o.Status))
		if err != nil {
			return store.State{}, err
		}
		items := make([]domain.OrderItem, len(o.Items))
		for j, it := range o.Items {
			items[j] = domain.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				Price:     it.Price.Decimal,
			}
		}
		state.Orders = append(state.Orders, domain.Order{
			ID:            o.ID,
			UserID:        o.UserID,
			PlayerID:      o.PlayerID,
			Game:          o.Game,
			Region:        o.Region,
			Notes:         o.Notes,
			Total:         o.Total.Decimal,
			Currency:      o.Currency,
			Status:        status,
			PaymentMethod: o.PaymentMethod,
			CreatedAt:     o.CreatedAt.Time,
			Items:         items,
			AutoDelivery:  o.AutoDelivery,
		})
	}

	for i, u := range d.Users {
		if err := checkID("user", i, u.ID); err != nil {
			return store.State{}, err
		}
		role, err := checkEnum("user", u.ID, domain.UserRole(u.Role))
		if err != nil {
			return store.State{}, err
		}
		status, err := checkEnum("user", u.ID, domain.UserStatus(u.Status))
		if err != nil {
			return store.State{}, err
		}
		state.Users = append(state.Users, domain.User{
			ID:            u.ID,
			Nickname:      u.Nickname,
			Email:         u.Email,
			Role:          role,
			Status:        status,
			FavoriteGames: u.FavoriteGames,
			TotalSpent:    u.TotalSpent.Decimal,
			LastActive:    u.LastActive.Time,
		})
	}

	for i, p := range d.Payments {
		if err := checkID("payment", i, p.ID); err != nil {
			return store.State{}, err
		}
		status, err := checkEnum("payment", p.ID, domain.PaymentStatus(p.Status))
		if err != nil {
			return store.State{}, err
		}
		risk, err := checkEnum("payment", p.ID, domain.RiskLevel(p.RiskLevel))
		if err != nil {
			return store.State{}, err
		}
		state.Payments = append(state.Payments, domain.Payment{
			ID:            p.ID,
			OrderID:       p.OrderID,
			Provider:      p.Provider,
			Channel:       p.Channel,
			Amount:        p.Amount.Decimal,
			Currency:      p.Currency,
			Status:        status,
			TransactionID: p.TransactionID,
			CreatedAt:     p.CreatedAt.Time,
			UpdatedAt:     p.UpdatedAt.Time,
			RiskLevel:     risk,
		})
	}

	for i, in := range d.Integrations {
		if err := checkID("integration", i, in.ID); err != nil {
			return store.State{}, err
		}
		status, err := checkEnum("integration", in.ID, domain.IntegrationStatus(in.Status))
		if err != nil {
			return store.State{}, err
		}
		state.Integrations = append(state.Integrations, domain.IntegrationProvider{
			ID:           in.ID,
			Name:         in.Name,
			Status:       status,
			LatencyMs:    in.LatencyMs,
			SuccessRate:  in.SuccessRate,
			LastSync:     in.LastSync.Time,
			Instructions: in.Instructions,
		})
	}

	for i, l := range d.IntegrationLogs {
		if err := checkID("integration log", i, l.ID); err != nil {
			return store.State{}, err
		}
		typ, err := checkEnum("integration log", l.ID, domain.LogType(l.Type))
		if err != nil {
			return store.State{}, err
		}
		status, err := checkEnum("integration log", l.ID, domain.LogStatus(l.Status))
		if err != nil {
			return store.State{}, err
		}
		state.IntegrationLogs = append(state.IntegrationLogs, domain.IntegrationActionLog{
			ID:         l.ID,
			ProviderID: l.ProviderID,
			Type:       typ,
			Status:     status,
			CreatedAt:  l.CreatedAt.Time,
			Details:    l.Details,
		})
	}

	return state, nil
}
