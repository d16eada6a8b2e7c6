package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stratuspay/charge-system/charge-service/domain"
	"github.com/stratuspay/charge-system/charge-service/mocks"
	"github.com/stratuspay/charge-system/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestValidatePaymentMethod_Execute(t *testing.T) {
	tests := []struct {
		name           string
		command        *ValidatePaymentMethodCommand
		setupMocks     func(*mocks.MockNetworkTransport, *mocks.MockPublisher)
		expectedReason domain.ValidationReason
		expectedError  string
	}{
		{
			name:    "usable instrument",
			command: &ValidatePaymentMethodCommand{InstrumentType: "card", Token: "tok_good"},
			setupMocks: func(transport *mocks.MockNetworkTransport, publisher *mocks.MockPublisher) {
				transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
					Return(&domain.ValidityResult{Valid: true}, nil).Once()

				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.PaymentMethodValidatedEvent
				})).Return(nil).Once()
			},
		},
		{
			name:    "revoked instrument",
			command: &ValidatePaymentMethodCommand{InstrumentType: "card", Token: "tok_bad"},
			setupMocks: func(transport *mocks.MockNetworkTransport, publisher *mocks.MockPublisher) {
				transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
					Return(&domain.ValidityResult{Valid: false, Reason: "revoked"}, nil).Once()

				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.PaymentMethodRejectedEvent
				})).Return(nil).Once()
			},
			expectedReason: domain.ValidationReasonInstrumentInvalid,
			expectedError:  "payment method validation failed",
		},
		{
			name:    "malformed details",
			command: &ValidatePaymentMethodCommand{InstrumentType: "card", Token: ""},
			setupMocks: func(transport *mocks.MockNetworkTransport, publisher *mocks.MockPublisher) {
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.PaymentMethodRejectedEvent
				})).Return(nil).Once()
			},
			expectedReason: domain.ValidationReasonMalformedDetails,
			expectedError:  "payment method validation failed",
		},
		{
			name:    "unreachable validity check",
			command: &ValidatePaymentMethodCommand{InstrumentType: "card", Token: "tok_good"},
			setupMocks: func(transport *mocks.MockNetworkTransport, publisher *mocks.MockPublisher) {
				transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()

				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedReason: domain.ValidationReasonCheckUnreachable,
			expectedError:  "payment method validation failed",
		},
		{
			name:    "validated event publish error",
			command: &ValidatePaymentMethodCommand{InstrumentType: "card", Token: "tok_good"},
			setupMocks: func(transport *mocks.MockNetworkTransport, publisher *mocks.MockPublisher) {
				transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
					Return(&domain.ValidityResult{Valid: true}, nil).Once()

				publisher.EXPECT().Publish(mock.Anything, mock.Anything).
					Return(errors.New("publish error")).Once()
			},
			expectedError: "failed to publish payment method validated event",
		},
		{
			name:    "rejected event publish error",
			command: &ValidatePaymentMethodCommand{InstrumentType: "card", Token: "tok_bad"},
			setupMocks: func(transport *mocks.MockNetworkTransport, publisher *mocks.MockPublisher) {
				transport.EXPECT().CheckValidity(mock.Anything, mock.Anything).
					Return(&domain.ValidityResult{Valid: false, Reason: "revoked"}, nil).Once()

				publisher.EXPECT().Publish(mock.Anything, mock.Anything).
					Return(errors.New("publish error")).Once()
			},
			expectedError: "failed to publish payment method rejected event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := mocks.NewMockNetworkTransport(t)
			publisher := mocks.NewMockPublisher(t)

			tt.setupMocks(transport, publisher)

			useCase := NewValidatePaymentMethod(domain.NewValidator(transport), publisher)

			err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)

				if tt.expectedReason != "" {
					var validationErr *domain.ValidationError
					assert.True(t, errors.As(err, &validationErr))
					assert.Equal(t, tt.expectedReason, validationErr.Reason)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
