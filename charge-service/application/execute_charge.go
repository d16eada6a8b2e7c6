package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stratuspay/charge-system/charge-service/domain"
	"github.com/stratuspay/charge-system/shared/events"
	"github.com/stratuspay/charge-system/shared/models"
	"github.com/stratuspay/charge-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ExecuteChargeCommand represents the command to execute a charge
type ExecuteChargeCommand struct {
	InstrumentType string `json:"instrument_type"`
	Token          string `json:"token"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
}

// ExecuteChargeResponse carries the classified outcome of one charge attempt
type ExecuteChargeResponse struct {
	ChargeID models.ID           `json:"charge_id"`
	Status   domain.ChargeStatus `json:"status"`
	Terminal bool                `json:"terminal"`
}

// ExecuteCharge use case runs the two-phase flow: validate the instrument,
// then execute exactly one charge attempt. It publishes one lifecycle event
// per definite outcome. Execution errors publish nothing: the business
// outcome is unknown and an event would assert one.
type ExecuteCharge struct {
	validator      *domain.Validator
	executor       *domain.ChargeExecutor
	eventPublisher events.Publisher
}

// NewExecuteCharge creates a new ExecuteCharge use case
func NewExecuteCharge(
	validator *domain.Validator,
	executor *domain.ChargeExecutor,
	eventPublisher events.Publisher,
) *ExecuteCharge {
	return &ExecuteCharge{
		validator:      validator,
		executor:       executor,
		eventPublisher: eventPublisher,
	}
}

// Execute validates and charges. Validation failures return a wrapped
// *domain.ValidationError and never reach the processor; charge outcomes are
// returned as the canonical status, and *domain.ExecutionError signals the
// outcome is unknown.
func (uc *ExecuteCharge) Execute(ctx context.Context, cmd *ExecuteChargeCommand) (*ExecuteChargeResponse, error) {
	details := domain.NewPaymentMethodDetails(domain.InstrumentType(cmd.InstrumentType), cmd.Token)
	paymentMethod := domain.NewPaymentMethod(details, uc.validator, uc.executor)

	chargeID := models.GenerateUUID()

	if err := paymentMethod.Validate(ctx); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			event := events.NewEvent(chargeID, events.PaymentMethodRejectedEvent, PaymentMethodRejectedData{
				InstrumentType: details.InstrumentType.String(),
				Token:          details.Token,
				Reason:         string(validationErr.Reason),
				Message:        validationErr.Message,
			})

			if pubErr := uc.eventPublisher.Publish(ctx, event); pubErr != nil {
				return nil, errors.Wrap(pubErr, "failed to publish payment method rejected event")
			}
		}

		return nil, errors.Wrap(err, "payment method validation failed")
	}

	amount := models.NewMoney(cmd.Amount, cmd.Currency)

	status, err := paymentMethod.Charge(ctx, amount)
	if err != nil {
		return nil, errors.Wrap(err, "charge execution failed")
	}

	telemetry.RecordCounter(ctx, "charges_total", "Total charge attempts by status", 1,
		attribute.String("status", status.String()),
		attribute.String("instrument_type", details.InstrumentType.String()),
	)

	event := events.NewEvent(chargeID, chargeEventType(status), ChargeOutcomeData{
		ChargeID:       chargeID,
		InstrumentType: details.InstrumentType.String(),
		Token:          details.Token,
		Amount:         amount,
		Status:         status.String(),
		Terminal:       status.IsTerminal(),
	})

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to publish charge outcome event")
	}

	return &ExecuteChargeResponse{
		ChargeID: chargeID,
		Status:   status,
		Terminal: status.IsTerminal(),
	}, nil
}

// chargeEventType maps each canonical status to its lifecycle topic
func chargeEventType(status domain.ChargeStatus) string {
	switch status {
	case domain.ChargeStatusOK:
		return events.ChargeSucceededEvent
	case domain.ChargeStatusFailed:
		return events.ChargeDeclinedEvent
	case domain.ChargeStatusPending:
		return events.ChargePendingEvent
	case domain.ChargeStatusAuthChallengeNeeded:
		return events.ChargeAuthChallengeRequiredEvent
	case domain.ChargeStatusExpired:
		return events.ChargeExpiredEvent
	}
	return ""
}

// ChargeOutcomeData represents data for charge lifecycle events
type ChargeOutcomeData struct {
	ChargeID       models.ID    `json:"charge_id"`
	InstrumentType string       `json:"instrument_type"`
	Token          string       `json:"token"`
	Amount         models.Money `json:"amount"`
	Status         string       `json:"status"`
	Terminal       bool         `json:"terminal"`
}
