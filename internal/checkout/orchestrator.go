// Package checkout turns the current cart into the entities a purchase
// creates: one Order, one Payment and one audit log entry.
//
// The work is split into Steps run in sequence over a Draft. Steps only ever
// write to the Draft, so a failing step leaves nothing behind: the caller
// either receives a complete Result or an error and no state changes at all.
package checkout

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jcmexdev/topup-storefront/internal/store/domain"
	"github.com/jcmexdev/topup-storefront/internal/store/idgen"
)

var (
	// ErrEmptyCart is returned when there is nothing in the cart.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrNothingResolvable is returned when every cart entry points at a
	// product that no longer exists.
	ErrNothingResolvable = errors.New("checkout: no cart item resolves to a product")
)

// Step is a single unit of checkout work.
type Step interface {
	Name() string
	Execute(d *Draft) error
}

// Input is everything checkout reads. Cart and Products are read, never written.
type Input struct {
	Cart     []domain.CartItem
	Products []domain.Product
	Details  domain.CheckoutDetails
	IDs      idgen.Generator
	Now      time.Time
}

// Result is what a successful checkout produces.
type Result struct {
	Order   domain.Order
	Payment domain.Payment
	Log     domain.IntegrationActionLog
}

// Line is a cart entry resolved against the live catalog.
type Line struct {
	Product  domain.Product
	Quantity int
}

// Draft accumulates the checkout as steps run.
type Draft struct {
	Input

	Lines         []Line
	MixedCurrency bool
	Result        Result
}

// Orchestrator runs its steps in order and stops at the first failure.
type Orchestrator struct {
	steps  []Step
	logger *slog.Logger
}

func NewOrchestrator(steps []Step, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{steps: steps, logger: logger}
}

// DefaultSteps is the storefront checkout pipeline.
func DefaultSteps() []Step {
	return []Step{
		ResolveCartStep{},
		PriceStep{},
		MintOrderStep{},
		MintPaymentStep{},
		AuditLogStep{},
	}
}

// Plan runs the default pipeline.
func Plan(in Input, logger *slog.Logger) (Result, error) {
	return NewOrchestrator(DefaultSteps(), logger).Run(in)
}

// Run executes every step against a fresh Draft built from in.
func (o *Orchestrator) Run(in Input) (Result, error) {
	if in.IDs == nil {
		in.IDs = idgen.New()
	}
	if in.Now.IsZero() {
		in.Now = time.Now()
	}
	in.Now = in.Now.UTC()

	draft := &Draft{Input: in}
	for _, step := range o.steps {
		o.logger.Debug("checkout: executing step", "step", step.Name())
		if err := step.Execute(draft); err != nil {
			o.logger.Debug("checkout: step aborted, draft discarded", "step", step.Name(), "error", err)
			return Result{}, err
		}
	}

	if draft.MixedCurrency {
		o.logger.Warn("checkout: cart mixes currencies, total uses the first item's currency",
			"order_id", draft.Result.Order.ID,
			"currency", draft.Result.Order.Currency,
		)
	}
	return draft.Result, nil
}
