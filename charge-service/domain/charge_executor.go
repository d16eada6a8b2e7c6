package domain

import (
	"context"
	"errors"

	"github.com/stratuspay/charge-system/shared/models"
)

// ChargeExecutor performs exactly one charge attempt and classifies the raw
// transport response into the canonical ChargeStatus set. It never retries
// internally: retry policy belongs to the caller, which needs the distinction
// between retryable and terminal outcomes to decide correctly.
//
// ChargeExecutor does not re-validate the instrument; that is the facade's
// ordering guarantee.
type ChargeExecutor struct {
	transport NetworkTransport
}

// NewChargeExecutor creates a new ChargeExecutor
func NewChargeExecutor(transport NetworkTransport) *ChargeExecutor {
	return &ChargeExecutor{
		transport: transport,
	}
}

// Charge submits one charge attempt for the given amount and returns its
// classified status. Transport faults, timeouts and unrecognized processor
// statuses return an *ExecutionError; they are never coerced into a
// ChargeStatus.
func (e *ChargeExecutor) Charge(ctx context.Context, details PaymentMethodDetails, amount models.Money) (ChargeStatus, error) {
	if !amount.IsPositive() {
		return "", NewExecutionError(ExecutionReasonInvalidAmount, "amount must be positive")
	}

	response, err := e.transport.SubmitCharge(ctx, details, amount)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", NewExecutionError(ExecutionReasonTimeout, "charge submission timed out").WithCause(err)
		}
		return "", NewExecutionError(ExecutionReasonTransportFailure, "charge submission failed").WithCause(err)
	}

	status, err := NewChargeStatus(response.Status)
	if err != nil {
		return "", NewExecutionError(ExecutionReasonUnmappedResponse, err.Error())
	}

	return status, nil
}
