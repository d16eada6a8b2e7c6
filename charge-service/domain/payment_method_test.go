package domain_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stratuspay/charge-system/charge-service/domain"
	"github.com/stratuspay/charge-system/charge-service/mocks"
	"github.com/stratuspay/charge-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentMethod(transport *mocks.MockNetworkTransport, token string) *domain.PaymentMethod {
	details := domain.NewPaymentMethodDetails(domain.InstrumentTypeCard, token)
	return domain.NewPaymentMethod(details, domain.NewValidator(transport), domain.NewChargeExecutor(transport))
}

func TestPaymentMethod_ChargeBeforeValidate(t *testing.T) {
	// No expectations: the processor must never be reached.
	transport := mocks.NewMockNetworkTransport(t)
	pm := newPaymentMethod(transport, "tok_good")

	status, err := pm.Charge(context.Background(), models.NewMoney(1000, "USD"))

	assert.Empty(t, status)

	var executionErr *domain.ExecutionError
	assert.True(t, errors.As(err, &executionErr))
	assert.Equal(t, domain.ExecutionReasonNotValidated, executionErr.Reason)
	assert.False(t, pm.Validated())
}

func TestPaymentMethod_InvalidAmountWinsRegardlessOfValidationState(t *testing.T) {
	transport := mocks.NewMockNetworkTransport(t)
	pm := newPaymentMethod(transport, "tok_good")

	// Unvalidated instance: invalid_amount, not not_validated.
	_, err := pm.Charge(context.Background(), models.NewMoney(0, "USD"))

	var executionErr *domain.ExecutionError
	assert.True(t, errors.As(err, &executionErr))
	assert.Equal(t, domain.ExecutionReasonInvalidAmount, executionErr.Reason)

	// Validated instance: same answer.
	transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
		Return(&domain.ValidityResult{Valid: true}, nil).Once()
	assert.NoError(t, pm.Validate(context.Background()))

	_, err = pm.Charge(context.Background(), models.NewMoney(-100, "USD"))
	assert.True(t, errors.As(err, &executionErr))
	assert.Equal(t, domain.ExecutionReasonInvalidAmount, executionErr.Reason)
}

func TestPaymentMethod_ValidateThenCharge(t *testing.T) {
	transport := mocks.NewMockNetworkTransport(t)
	transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
		Return(&domain.ValidityResult{Valid: true}, nil).Once()
	transport.EXPECT().SubmitCharge(mock.Anything, mock.Anything, models.NewMoney(1000, "USD")).
		Return(&domain.ChargeResponse{Status: "ok"}, nil).Once()

	pm := newPaymentMethod(transport, "tok_good")

	assert.NoError(t, pm.Validate(context.Background()))
	assert.True(t, pm.Validated())

	status, err := pm.Charge(context.Background(), models.NewMoney(1000, "USD"))
	assert.NoError(t, err)
	assert.Equal(t, domain.ChargeStatusOK, status)
}

func TestPaymentMethod_ValidateIsIdempotent(t *testing.T) {
	transport := mocks.NewMockNetworkTransport(t)
	transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
		Return(&domain.ValidityResult{Valid: true}, nil).Twice()

	pm := newPaymentMethod(transport, "tok_good")

	assert.NoError(t, pm.Validate(context.Background()))
	assert.NoError(t, pm.Validate(context.Background()))
	assert.True(t, pm.Validated())
}

func TestPaymentMethod_FailedValidationLeavesInstanceUnvalidated(t *testing.T) {
	transport := mocks.NewMockNetworkTransport(t)
	transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
		Return(&domain.ValidityResult{Valid: false, Reason: "revoked"}, nil).Once()

	pm := newPaymentMethod(transport, "tok_bad")

	err := pm.Validate(context.Background())

	var validationErr *domain.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, domain.ValidationReasonInstrumentInvalid, validationErr.Reason)
	assert.False(t, pm.Validated())

	// Charging the rejected instance is a caller bug, surfaced immediately.
	_, err = pm.Charge(context.Background(), models.NewMoney(1000, "USD"))

	var executionErr *domain.ExecutionError
	assert.True(t, errors.As(err, &executionErr))
	assert.Equal(t, domain.ExecutionReasonNotValidated, executionErr.Reason)
}

func TestPaymentMethod_RemainsValidatedAfterAnyOutcome(t *testing.T) {
	tests := []struct {
		name           string
		rawStatus      string
		expectedStatus domain.ChargeStatus
	}{
		{name: "auth challenge keeps instance chargeable", rawStatus: "auth_challenge_needed", expectedStatus: domain.ChargeStatusAuthChallengeNeeded},
		{name: "expired keeps instance chargeable, re-validation is the caller's call", rawStatus: "expired", expectedStatus: domain.ChargeStatusExpired},
		{name: "declined keeps instance chargeable", rawStatus: "failed", expectedStatus: domain.ChargeStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := mocks.NewMockNetworkTransport(t)
			transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
				Return(&domain.ValidityResult{Valid: true}, nil).Once()
			transport.EXPECT().SubmitCharge(mock.Anything, mock.Anything, mock.Anything).
				Return(&domain.ChargeResponse{Status: tt.rawStatus}, nil).Once()
			transport.EXPECT().SubmitCharge(mock.Anything, mock.Anything, mock.Anything).
				Return(&domain.ChargeResponse{Status: "ok"}, nil).Once()

			pm := newPaymentMethod(transport, "tok_3dsecure")
			assert.NoError(t, pm.Validate(context.Background()))

			status, err := pm.Charge(context.Background(), models.NewMoney(5000, "USD"))
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.True(t, pm.Validated())

			// A follow-up charge needs no re-validation.
			status, err = pm.Charge(context.Background(), models.NewMoney(5000, "USD"))
			assert.NoError(t, err)
			assert.Equal(t, domain.ChargeStatusOK, status)
		})
	}
}

func TestPaymentMethod_ExecutionErrorDoesNotInventAnOutcome(t *testing.T) {
	transport := mocks.NewMockNetworkTransport(t)
	transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
		Return(&domain.ValidityResult{Valid: true}, nil).Once()
	transport.EXPECT().SubmitCharge(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()

	pm := newPaymentMethod(transport, "tok_good")
	assert.NoError(t, pm.Validate(context.Background()))

	status, err := pm.Charge(context.Background(), models.NewMoney(1000, "USD"))

	assert.Empty(t, status)

	var executionErr *domain.ExecutionError
	assert.True(t, errors.As(err, &executionErr))
	assert.Equal(t, domain.ExecutionReasonTransportFailure, executionErr.Reason)
}
