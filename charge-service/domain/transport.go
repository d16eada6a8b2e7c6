package domain

import (
	"context"

	"github.com/stratuspay/charge-system/shared/models"
)

// ValidityResult is the raw result of an external validity check.
type ValidityResult struct {
	Valid  bool
	Reason string
}

// ChargeResponse is the raw transport-layer response to a charge submission.
// Status is the processor's own vocabulary; classification into ChargeStatus
// happens in ChargeExecutor.
type ChargeResponse struct {
	Status                string
	ProviderTransactionID string
}

// NetworkTransport is the payment network collaborator this core consumes.
// Implementations own connectivity, timeouts and idempotency keys; transport
// faults surface as plain errors, never as a ChargeResponse.
type NetworkTransport interface {
	CheckValidity(ctx context.Context, details PaymentMethodDetails) (*ValidityResult, error)
	SubmitCharge(ctx context.Context, details PaymentMethodDetails, amount models.Money) (*ChargeResponse, error)
}
