package domain

import (
	"errors"
	"fmt"
	"strings"
)

// InstrumentType identifies the kind of payment instrument behind the details.
type InstrumentType string

const (
	InstrumentTypeCard   InstrumentType = "card"
	InstrumentTypeWallet InstrumentType = "wallet"
)

var allInstrumentTypes = map[string]InstrumentType{
	InstrumentTypeCard.String():   InstrumentTypeCard,
	InstrumentTypeWallet.String(): InstrumentTypeWallet,
}

// NewInstrumentType parses an instrument type from its string form
func NewInstrumentType(value string) (InstrumentType, error) {
	if t, ok := allInstrumentTypes[value]; ok {
		return t, nil
	}
	return "", errors.New(fmt.Sprintf("unknown instrument type: %s", value))
}

func (t InstrumentType) String() string {
	return string(t)
}

// PaymentMethodDetails is the caller-supplied identifying data for a payment
// instrument. It is immutable once constructed and never mutated after
// validation. Construction performs no validation: checking usability is the
// Validator's explicit, separately invoked job.
type PaymentMethodDetails struct {
	InstrumentType InstrumentType
	Token          string
}

// NewPaymentMethodDetails builds details for an instrument token
func NewPaymentMethodDetails(instrumentType InstrumentType, token string) PaymentMethodDetails {
	return PaymentMethodDetails{
		InstrumentType: instrumentType,
		Token:          token,
	}
}

// checkWellFormed applies the local, instrument-type-specific format rules.
// It involves no external call.
func (d PaymentMethodDetails) checkWellFormed() error {
	if _, ok := allInstrumentTypes[d.InstrumentType.String()]; !ok {
		return fmt.Errorf("unknown instrument type: %s", d.InstrumentType)
	}

	if strings.TrimSpace(d.Token) == "" {
		return errors.New("token cannot be empty")
	}

	if d.InstrumentType == InstrumentTypeCard && !strings.HasPrefix(d.Token, "tok_") {
		return fmt.Errorf("card token must carry the tok_ prefix: %s", d.Token)
	}

	return nil
}
