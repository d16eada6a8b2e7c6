package infrastructure

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/stratuspay/charge-system/charge-service/domain"
	"github.com/stratuspay/charge-system/shared/models"
)

var _ domain.NetworkTransport = (*SandboxTransport)(nil)

// Sandbox tokens with fixed behaviors. Any other token validates and charges
// successfully.
const (
	TokenRevoked       = "tok_revoked"
	TokenBad           = "tok_bad"
	TokenDeclined      = "tok_declined"
	TokenPending       = "tok_pending"
	Token3DSecure      = "tok_3dsecure"
	TokenExpired       = "tok_expired"
	TokenUnknownStatus = "tok_unknown_status"
	TokenNetworkError  = "tok_network_error"
)

// SandboxTransport is a deterministic in-process payment network used for
// local runs and tests. Outcomes are driven entirely by the instrument token,
// so every status the classifier handles can be produced on demand.
type SandboxTransport struct {
	latency time.Duration
}

// NewSandboxTransport creates a sandbox transport with simulated latency
func NewSandboxTransport(latency time.Duration) *SandboxTransport {
	return &SandboxTransport{
		latency: latency,
	}
}

// CheckValidity simulates the external validity check
func (t *SandboxTransport) CheckValidity(ctx context.Context, details domain.PaymentMethodDetails) (*domain.ValidityResult, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}

	switch details.Token {
	case TokenRevoked, TokenBad:
		return &domain.ValidityResult{Valid: false, Reason: "revoked"}, nil
	case TokenNetworkError:
		return nil, errors.New("sandbox: validity check unreachable")
	default:
		return &domain.ValidityResult{Valid: true}, nil
	}
}

// SubmitCharge simulates one charge submission
func (t *SandboxTransport) SubmitCharge(ctx context.Context, details domain.PaymentMethodDetails, amount models.Money) (*domain.ChargeResponse, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}

	response := &domain.ChargeResponse{
		ProviderTransactionID: "sandbox_" + models.GenerateUUID().String(),
	}

	switch details.Token {
	case TokenDeclined:
		response.Status = "failed"
	case TokenPending:
		response.Status = "pending"
	case Token3DSecure:
		response.Status = "auth_challenge_needed"
	case TokenExpired:
		response.Status = "expired"
	case TokenUnknownStatus:
		// A status outside the canonical vocabulary, for exercising the
		// unmapped_response path end to end.
		response.Status = "settlement_review"
	case TokenNetworkError:
		return nil, errors.New("sandbox: charge submission unreachable")
	default:
		response.Status = "ok"
	}

	return response, nil
}

// wait blocks for the simulated latency, honoring cancellation
func (t *SandboxTransport) wait(ctx context.Context) error {
	if t.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(t.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
