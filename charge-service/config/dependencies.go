package config

import (
	"fmt"
	"time"

	"github.com/stratuspay/charge-system/charge-service/application"
	"github.com/stratuspay/charge-system/charge-service/domain"
	"github.com/stratuspay/charge-system/charge-service/handlers"
	"github.com/stratuspay/charge-system/charge-service/infrastructure"
	sharedinfra "github.com/stratuspay/charge-system/shared/infrastructure"
)

type Dependencies struct {
	// Payment network
	Transport domain.NetworkTransport

	// Core components
	Validator *domain.Validator
	Executor  *domain.ChargeExecutor

	// Use Cases
	ValidatePaymentMethod *application.ValidatePaymentMethod
	ExecuteCharge         *application.ExecuteCharge

	// HTTP Handlers
	ChargeHandlers *handlers.ChargeHandlers

	// Infrastructure
	EventPublisher *sharedinfra.SNSPublisherAdapter
}

func BuildDependencies(config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(config.AWS.SNSTopicArn)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	// Initialize payment network transport
	deps.Transport = infrastructure.NewSandboxTransport(
		time.Duration(config.Gateway.LatencyMS) * time.Millisecond,
	)

	// Initialize core components
	deps.Validator = domain.NewValidator(deps.Transport)
	deps.Executor = domain.NewChargeExecutor(deps.Transport)

	// Initialize use cases
	deps.ValidatePaymentMethod = application.NewValidatePaymentMethod(deps.Validator, eventPublisher)
	deps.ExecuteCharge = application.NewExecuteCharge(deps.Validator, deps.Executor, eventPublisher)

	// Initialize handlers
	deps.ChargeHandlers = handlers.NewChargeHandlers(deps.ValidatePaymentMethod, deps.ExecuteCharge)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			return fmt.Errorf("failed to close event publisher: %w", err)
		}
	}

	return nil
}
