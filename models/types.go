package models

import (
	"crypto/subtle"
	"strings"
)

// WebhookPayload is the inbound webhook body. A nil field was absent on the
// wire, which is not the same as an empty or invalid value.
type WebhookPayload struct {
	Event         *string
	TransactionID *string
	Amount        *string
	Currency      *string
	Timestamp     *string
}

// TransactionID identifies a transaction reported by the webhook sender.
type TransactionID string

// ParseTransactionID accepts only present, non-blank identifiers.
func ParseTransactionID(raw *string) (TransactionID, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return "", false
	}
	return TransactionID(*raw), true
}

func (id TransactionID) String() string {
	return string(id)
}

// WebhookToken is the shared secret presented in X-Webhook-Token.
type WebhookToken string

// Equal compares in constant time. Empty tokens never match.
func (t WebhookToken) Equal(other WebhookToken) bool {
	if t == "" || other == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(t), []byte(other)) == 1
}

type CallbackOutcome string

const (
	OutcomeConfirm CallbackOutcome = "confirmar"
	OutcomeCancel  CallbackOutcome = "cancelar"
)

func (o CallbackOutcome) IsValid() bool {
	return o == OutcomeConfirm || o == OutcomeCancel
}

// CallbackPayload is the body posted to the callback service.
type CallbackPayload struct {
	TransactionID TransactionID `json:"transaction_id" validate:"required"`
}
