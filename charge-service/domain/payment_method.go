package domain

import (
	"context"

	"github.com/stratuspay/charge-system/shared/models"
)

// PaymentMethod binds one PaymentMethodDetails value to its validation state
// and exposes the two-phase contract: Validate, then Charge. The two phases
// are separate calls so the caller's code path visibly distinguishes "is this
// payment method usable" from "did this specific charge succeed".
//
// A PaymentMethod owns its validated flag exclusively and is not safe for
// concurrent Charge calls without external serialization.
type PaymentMethod struct {
	details   PaymentMethodDetails
	validator *Validator
	executor  *ChargeExecutor
	validated bool
}

// NewPaymentMethod wraps details without validating them. The instance starts
// Unvalidated; Charge is rejected until Validate succeeds once.
func NewPaymentMethod(details PaymentMethodDetails, validator *Validator, executor *ChargeExecutor) *PaymentMethod {
	return &PaymentMethod{
		details:   details,
		validator: validator,
		executor:  executor,
	}
}

// Details returns the wrapped payment method details
func (pm *PaymentMethod) Details() PaymentMethodDetails {
	return pm.details
}

// Validated reports whether a Validate call has succeeded
func (pm *PaymentMethod) Validated() bool {
	return pm.validated
}

// Validate checks the instrument is currently chargeable. On failure the
// instance stays Unvalidated and the caller may retry or abandon. Calling
// Validate again after success is idempotent.
func (pm *PaymentMethod) Validate(ctx context.Context) error {
	if err := pm.validator.Validate(ctx, pm.details); err != nil {
		return err
	}

	pm.validated = true
	return nil
}

// Charge executes one charge attempt for the given amount. The amount check
// precedes the validation guard so invalid_amount surfaces regardless of
// validation state. After any outcome, including expired, the instance stays
// Validated; callers who suspect instrument state changed re-validate at
// their discretion.
func (pm *PaymentMethod) Charge(ctx context.Context, amount models.Money) (ChargeStatus, error) {
	if !amount.IsPositive() {
		return "", NewExecutionError(ExecutionReasonInvalidAmount, "amount must be positive")
	}

	if !pm.validated {
		return "", NewExecutionError(ExecutionReasonNotValidated, "charge requires a prior successful validate")
	}

	return pm.executor.Charge(ctx, pm.details, amount)
}
