package domain

import "context"

// Validator checks payment method details are well-formed and currently
// usable before any money movement is attempted. Success means the instrument
// was chargeable at validation time; it cannot guarantee it remains so by the
// time a charge executes.
type Validator struct {
	transport NetworkTransport
}

// NewValidator creates a new Validator
func NewValidator(transport NetworkTransport) *Validator {
	return &Validator{
		transport: transport,
	}
}

// Validate returns nil when the instrument is chargeable, or a
// *ValidationError whose reason distinguishes locally malformed details,
// a definitively invalid instrument, and an unreachable validity check.
// It performs exactly one external call and has no other side effects.
func (v *Validator) Validate(ctx context.Context, details PaymentMethodDetails) error {
	if err := details.checkWellFormed(); err != nil {
		return NewValidationError(ValidationReasonMalformedDetails, err.Error())
	}

	result, err := v.transport.CheckValidity(ctx, details)
	if err != nil {
		// Could not determine validity. The caller may retry validation;
		// instrument_invalid would wrongly tell it to abandon the instrument.
		return NewValidationError(ValidationReasonCheckUnreachable, err.Error())
	}

	if !result.Valid {
		return NewValidationError(ValidationReasonInstrumentInvalid, result.Reason)
	}

	return nil
}
