package domain

import "fmt"

// ChargeStatus is the canonical outcome vocabulary for a charge attempt.
// Every charge attempt produces exactly one of these values; raw processor
// responses outside this set are never coerced into it.
type ChargeStatus string

const (
	ChargeStatusOK                  ChargeStatus = "ok"
	ChargeStatusFailed              ChargeStatus = "failed"
	ChargeStatusPending             ChargeStatus = "pending"
	ChargeStatusAuthChallengeNeeded ChargeStatus = "auth_challenge_needed"
	ChargeStatusExpired             ChargeStatus = "expired"
)

var allChargeStatuses = map[string]ChargeStatus{
	ChargeStatusOK.String():                  ChargeStatusOK,
	ChargeStatusFailed.String():              ChargeStatusFailed,
	ChargeStatusPending.String():             ChargeStatusPending,
	ChargeStatusAuthChallengeNeeded.String(): ChargeStatusAuthChallengeNeeded,
	ChargeStatusExpired.String():             ChargeStatusExpired,
}

// NewChargeStatus maps a raw processor status to the canonical set.
// Unrecognized values are an error, never a default status.
func NewChargeStatus(value string) (ChargeStatus, error) {
	if status, ok := allChargeStatuses[value]; ok {
		return status, nil
	}
	return "", fmt.Errorf("unknown charge status: %s", value)
}

func (s ChargeStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further action on this charge attempt is
// expected. Pending and auth_challenge_needed await external follow-up;
// expired requires restarting from validation.
func (s ChargeStatus) IsTerminal() bool {
	return s == ChargeStatusOK || s == ChargeStatusFailed
}
