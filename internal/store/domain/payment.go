package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            string
	OrderID       string
	Provider      string
	Channel       string
	Amount        decimal.Decimal
	Currency      string
	Status        PaymentStatus
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	RiskLevel     RiskLevel
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentInReview  PaymentStatus = "in_review"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentInReview, PaymentSucceeded, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}
