package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/topup-storefront/internal/store/domain"
	"github.com/jcmexdev/topup-storefront/internal/store/idgen"
)

// --- ResolveCartStep ---

// ResolveCartStep looks every cart entry up in the catalog. Entries whose
// product is gone are skipped.
type ResolveCartStep struct{}

func (ResolveCartStep) Name() string { return "Resolve_Cart_Step" }

func (ResolveCartStep) Execute(d *Draft) error {
	if len(d.Cart) == 0 {
		return ErrEmptyCart
	}

	byID := make(map[string]domain.Product, len(d.Products))
	for _, p := range d.Products {
		if _, seen := byID[p.ID]; !seen {
			byID[p.ID] = p
		}
	}

	lines := make([]Line, 0, len(d.Cart))
	for _, item := range d.Cart {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, Line{Product: product, Quantity: item.Quantity})
	}
	if len(lines) == 0 {
		return ErrNothingResolvable
	}

	d.Lines = lines
	return nil
}

// --- PriceStep ---

// PriceStep sums price x quantity and rounds to cents. The currency is taken
// from the first line.
type PriceStep struct{}

func (PriceStep) Name() string { return "Price_Step" }

func (PriceStep) Execute(d *Draft) error {
	if len(d.Lines) == 0 {
		return ErrNothingResolvable
	}

	total := decimal.Zero
	currency := d.Lines[0].Product.Currency
	for _, line := range d.Lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		if line.Product.Currency != currency {
			d.MixedCurrency = true
		}
	}

	d.Result.Order.Total = total.Round(2)
	d.Result.Order.Currency = currency
	return nil
}

// --- MintOrderStep ---

type MintOrderStep struct{}

func (MintOrderStep) Name() string { return "Mint_Order_Step" }

func (MintOrderStep) Execute(d *Draft) error {
	items := make([]domain.OrderItem, len(d.Lines))
	for i, line := range d.Lines {
		items[i] = domain.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		}
	}

	order := &d.Result.Order
	order.ID = d.IDs.NewID(idgen.PrefixOrder)
	order.UserID = domain.GuestUserID
	order.PlayerID = d.Details.PlayerID
	order.Game = d.Details.Game
	order.Region = d.Details.Region
	order.Notes = d.Details.Notes
	order.Status = domain.OrderCreated
	order.PaymentMethod = paymentMethodLabel(d.Details)
	order.CreatedAt = d.Now
	order.Items = items
	order.AutoDelivery = d.Details.AutoDelivery
	return nil
}

func paymentMethodLabel(details domain.CheckoutDetails) string {
	return details.PaymentMethod + " · " + details.PaymentChannel
}

// --- MintPaymentStep ---

// MintPaymentStep creates the pending payment mirroring the order total.
type MintPaymentStep struct{}

func (MintPaymentStep) Name() string { return "Mint_Payment_Step" }

func (MintPaymentStep) Execute(d *Draft) error {
	order := d.Result.Order
	if order.ID == "" {
		return fmt.Errorf("checkout: payment minted before order")
	}

	d.Result.Payment = domain.Payment{
		ID:            d.IDs.NewID(idgen.PrefixPayment),
		OrderID:       order.ID,
		Provider:      d.Details.PaymentMethod,
		Channel:       d.Details.PaymentChannel,
		Amount:        order.Total,
		Currency:      order.Currency,
		Status:        domain.PaymentPending,
		TransactionID: d.IDs.NewID(idgen.PrefixTransaction),
		CreatedAt:     d.Now,
		UpdatedAt:     d.Now,
		RiskLevel:     domain.RiskMedium,
	}
	return nil
}

// --- AuditLogStep ---

// AuditLogStep queues the top-up log entry summarising the order.
type AuditLogStep struct{}

func (AuditLogStep) Name() string { return "Audit_Log_Step" }

func (AuditLogStep) Execute(d *Draft) error {
	order := d.Result.Order
	d.Result.Log = domain.IntegrationActionLog{
		ID:         d.IDs.NewID(idgen.PrefixLog),
		ProviderID: domain.CheckoutProviderID,
		Type:       domain.LogTopUp,
		Status:     domain.LogQueued,
		CreatedAt:  d.Now,
		Details: fmt.Sprintf("Checkout started for %s and player %s. Amount %s %s.",
			d.Details.Game, d.Details.PlayerID, order.Total.StringFixed(2), order.Currency),
	}
	return nil
}
