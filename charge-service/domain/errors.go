package domain

import "fmt"

// ValidationReason classifies why a payment method is unusable.
type ValidationReason string

const (
	// ValidationReasonMalformedDetails means the details fail local
	// well-formedness rules for the instrument type.
	ValidationReasonMalformedDetails ValidationReason = "malformed_details"

	// ValidationReasonInstrumentInvalid means the external check reported the
	// instrument invalid or revoked. Retrying validation will not help.
	ValidationReasonInstrumentInvalid ValidationReason = "instrument_invalid"

	// ValidationReasonCheckUnreachable means validity could not be determined.
	// The caller may retry validation itself.
	ValidationReasonCheckUnreachable ValidationReason = "validity_check_unreachable"
)

// ValidationError reports why a payment method cannot be charged.
// It is a distinct failure domain from ExecutionError: validation failures
// never represent a charge outcome.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

// NewValidationError creates a validation error with a reason code
func NewValidationError(reason ValidationReason, message string) *ValidationError {
	return &ValidationError{
		Reason:  reason,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("payment method validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("payment method validation failed: %s: %s", e.Reason, e.Message)
}

// ExecutionReason classifies charge execution errors.
type ExecutionReason string

const (
	// ExecutionReasonNotValidated means Charge was called before a successful
	// Validate. This is a caller bug, not a processor outcome.
	ExecutionReasonNotValidated ExecutionReason = "not_validated"

	// ExecutionReasonInvalidAmount means the amount was zero or negative.
	// This is a caller bug, not a processor outcome.
	ExecutionReasonInvalidAmount ExecutionReason = "invalid_amount"

	// ExecutionReasonTransportFailure means the charge submission failed at
	// the transport layer; the business outcome is unknown.
	ExecutionReasonTransportFailure ExecutionReason = "transport_failure"

	// ExecutionReasonTimeout means the charge submission timed out or was
	// cancelled; the business outcome is unknown.
	ExecutionReasonTimeout ExecutionReason = "timeout"

	// ExecutionReasonUnmappedResponse means the processor returned a status
	// outside the canonical ChargeStatus set.
	ExecutionReasonUnmappedResponse ExecutionReason = "unmapped_response"
)

// ExecutionError reports conditions under which the business outcome of a
// charge attempt is unknown. It is never folded into ChargeStatus: a caller
// must be able to distinguish "the processor told us no" (ChargeStatusFailed)
// from "we don't know what the processor said".
type ExecutionError struct {
	Reason  ExecutionReason
	Message string
	cause   error
}

// NewExecutionError creates an execution error with a reason code
func NewExecutionError(reason ExecutionReason, message string) *ExecutionError {
	return &ExecutionError{
		Reason:  reason,
		Message: message,
	}
}

// WithCause attaches the underlying error
func (e *ExecutionError) WithCause(cause error) *ExecutionError {
	e.cause = cause
	return e
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("charge execution failed: %s", e.Reason)
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

func (e *ExecutionError) Unwrap() error {
	return e.cause
}
