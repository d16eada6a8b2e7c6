package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stratuspay/charge-system/charge-service/domain"
	"github.com/stratuspay/charge-system/shared/events"
	"github.com/stratuspay/charge-system/shared/models"
)

// ValidatePaymentMethodCommand represents the command to validate a payment method
type ValidatePaymentMethodCommand struct {
	InstrumentType string `json:"instrument_type"`
	Token          string `json:"token"`
}

// ValidatePaymentMethod use case checks an instrument is usable before any
// money movement and publishes the result
type ValidatePaymentMethod struct {
	validator      *domain.Validator
	eventPublisher events.Publisher
}

// NewValidatePaymentMethod creates a new ValidatePaymentMethod use case
func NewValidatePaymentMethod(
	validator *domain.Validator,
	eventPublisher events.Publisher,
) *ValidatePaymentMethod {
	return &ValidatePaymentMethod{
		validator:      validator,
		eventPublisher: eventPublisher,
	}
}

// Execute validates the payment method details. A *domain.ValidationError is
// returned (wrapped) when the instrument is unusable; its reason code tells
// the caller whether to correct details, abandon the instrument, or retry.
func (uc *ValidatePaymentMethod) Execute(ctx context.Context, cmd *ValidatePaymentMethodCommand) error {
	details := domain.NewPaymentMethodDetails(domain.InstrumentType(cmd.InstrumentType), cmd.Token)
	instrumentID := models.GenerateUUID()

	if err := uc.validator.Validate(ctx, details); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			event := events.NewEvent(instrumentID, events.PaymentMethodRejectedEvent, PaymentMethodRejectedData{
				InstrumentType: details.InstrumentType.String(),
				Token:          details.Token,
				Reason:         string(validationErr.Reason),
				Message:        validationErr.Message,
			})

			if pubErr := uc.eventPublisher.Publish(ctx, event); pubErr != nil {
				return errors.Wrap(pubErr, "failed to publish payment method rejected event")
			}
		}

		return errors.Wrap(err, "payment method validation failed")
	}

	event := events.NewEvent(instrumentID, events.PaymentMethodValidatedEvent, PaymentMethodValidatedData{
		InstrumentType: details.InstrumentType.String(),
		Token:          details.Token,
	})

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish payment method validated event")
	}

	return nil
}

// PaymentMethodValidatedData represents data for payment method validated events
type PaymentMethodValidatedData struct {
	InstrumentType string `json:"instrument_type"`
	Token          string `json:"token"`
}

// PaymentMethodRejectedData represents data for payment method rejected events
type PaymentMethodRejectedData struct {
	InstrumentType string `json:"instrument_type"`
	Token          string `json:"token"`
	Reason         string `json:"reason"`
	Message        string `json:"message,omitempty"`
}
