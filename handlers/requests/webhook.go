package requests

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/IfedayoAwe/webhook-callback-service/models"
)

var ErrNotJSONObject = errors.New("webhook body must be a JSON object")

// WebhookRequest mirrors the wire payload. Every field is optional; a nil
// pointer means the key was absent or null.
type WebhookRequest struct {
	Event         *string `json:"event"`
	TransactionID *string `json:"transaction_id"`
	Amount        *string `json:"amount"`
	Currency      *string `json:"currency"`
	Timestamp     *string `json:"timestamp"`
}

// DecodeWebhookRequest accepts exactly one JSON object whose known fields
// are strings or null.
func DecodeWebhookRequest(body []byte) (WebhookRequest, error) {
	var req WebhookRequest

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return req, ErrNotJSONObject
	}

	if err := json.Unmarshal(trimmed, &req); err != nil {
		return WebhookRequest{}, err
	}

	return req, nil
}

func (r WebhookRequest) ToPayload() models.WebhookPayload {
	return models.WebhookPayload{
		Event:         r.Event,
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Timestamp:     r.Timestamp,
	}
}
