package domain

import "time"

// IntegrationProvider is an upstream top-up partner the storefront forwards
// orders to.
type IntegrationProvider struct {
	ID           string
	Name         string
	Status       IntegrationStatus
	LatencyMs    int
	SuccessRate  float64
	LastSync     time.Time
	Instructions string
}

type IntegrationStatus string

const (
	IntegrationOnline   IntegrationStatus = "online"
	IntegrationDegraded IntegrationStatus = "degraded"
	IntegrationOffline  IntegrationStatus = "offline"
)

func (s IntegrationStatus) Valid() bool {
	switch s {
	case IntegrationOnline, IntegrationDegraded, IntegrationOffline:
		return true
	}
	return false
}

// CheckoutProviderID is the provider recorded on logs emitted by checkout.
const CheckoutProviderID = "checkout"

// IntegrationActionLog is one row of the append-only integration audit trail.
// The canonical read order is newest first.
type IntegrationActionLog struct {
	ID         string
	ProviderID string
	Type       LogType
	Status     LogStatus
	CreatedAt  time.Time
	Details    string
}

type LogType string

const (
	LogTopUp        LogType = "topup"
	LogRefund       LogType = "refund"
	LogVerification LogType = "verification"
)

func (t LogType) Valid() bool {
	switch t {
	case LogTopUp, LogRefund, LogVerification:
		return true
	}
	return false
}

type LogStatus string

const (
	LogQueued     LogStatus = "queued"
	LogInProgress LogStatus = "in_progress"
	LogDone       LogStatus = "done"
	LogFailed     LogStatus = "failed"
)

func (s LogStatus) Valid() bool {
	switch s {
	case LogQueued, LogInProgress, LogDone, LogFailed:
		return true
	}
	return false
}
