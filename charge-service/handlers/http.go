package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/stratuspay/charge-system/charge-service/application"
	"github.com/stratuspay/charge-system/charge-service/domain"
)

// ChargeHandlers contains charge HTTP handlers
type ChargeHandlers struct {
	validatePaymentMethod *application.ValidatePaymentMethod
	executeCharge         *application.ExecuteCharge
}

// NewChargeHandlers creates new charge handlers
func NewChargeHandlers(
	validatePaymentMethod *application.ValidatePaymentMethod,
	executeCharge *application.ExecuteCharge,
) *ChargeHandlers {
	return &ChargeHandlers{
		validatePaymentMethod: validatePaymentMethod,
		executeCharge:         executeCharge,
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// ValidatePaymentMethod handles payment method validation requests
func (h *ChargeHandlers) ValidatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var cmd application.ValidatePaymentMethodCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validatePaymentMethod.Execute(r.Context(), &cmd); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCharge handles charge requests
func (h *ChargeHandlers) CreateCharge(w http.ResponseWriter, r *http.Request) {
	var cmd application.ExecuteChargeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.executeCharge.Execute(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// writeError maps the two domain error families to disjoint status code
// ranges so callers can tell a rejected instrument from an unknown outcome.
func (h *ChargeHandlers) writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(errorResponse{
			Error:   "validation_failed",
			Reason:  string(validationErr.Reason),
			Message: validationErr.Message,
		})
		return
	}

	var executionErr *domain.ExecutionError
	if errors.As(err, &executionErr) {
		status := http.StatusBadGateway
		switch executionErr.Reason {
		case domain.ExecutionReasonNotValidated, domain.ExecutionReasonInvalidAmount:
			// Caller contract violations, not processor trouble.
			status = http.StatusBadRequest
		}

		w.WriteHeader(status)
		json.NewEncoder(w).Encode(errorResponse{
			Error:   "execution_error",
			Reason:  string(executionErr.Reason),
			Message: executionErr.Message,
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	})
}

// RegisterRoutes registers charge routes
func (h *ChargeHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/payment-methods", func(r chi.Router) {
		r.Post("/validate", h.ValidatePaymentMethod)
	})

	r.Route("/charges", func(r chi.Router) {
		r.Post("/", h.CreateCharge)
	})
}
