package services

import (
	"context"

	"github.com/IfedayoAwe/webhook-callback-service/models"
	"github.com/IfedayoAwe/webhook-callback-service/pkg/money"
	"github.com/IfedayoAwe/webhook-callback-service/utils"
)

const (
	MsgInvalidToken     = "Invalid token"
	MsgMissingFields    = "Missing required fields"
	MsgDuplicate        = "Transaction already processed"
	MsgInvalidAmount    = "Invalid amount"
	MsgWebhookProcessed = "Webhook processed successfully"
)

type WebhookService interface {
	// ProcessWebhook runs the decision chain for one delivery. A nil error
	// means the transaction was recorded and confirmed; every other outcome
	// comes back as a wrapped client error.
	ProcessWebhook(ctx context.Context, token *models.WebhookToken, payload models.WebhookPayload) error
}

type webhookService struct {
	token    models.WebhookToken
	ledger   LedgerService
	notifier NotifierService
}

func (ws *webhookService) ProcessWebhook(ctx context.Context, token *models.WebhookToken, payload models.WebhookPayload) error {
	if token == nil || !ws.token.Equal(*token) {
		return utils.NotAuthorizedErr(MsgInvalidToken)
	}

	// amount is deliberately not part of this check; a missing amount is
	// reported as an invalid one further down
	txID, hasID := models.ParseTransactionID(payload.TransactionID)
	if !hasID || payload.Timestamp == nil {
		if hasID {
			ws.notifier.Notify(ctx, models.OutcomeCancel, txID)
		}
		return utils.BadRequestErr(MsgMissingFields)
	}

	if ws.ledger.Contains(txID) {
		return utils.DuplicateKeyErr(MsgDuplicate)
	}

	if !money.IsValidAmount(payload.Amount) {
		ws.notifier.Notify(ctx, models.OutcomeCancel, txID)
		return utils.BadRequestErr(MsgInvalidAmount)
	}

	// a concurrent delivery of the same id may have won between Contains
	// and here
	if !ws.ledger.Record(txID) {
		return utils.DuplicateKeyErr(MsgDuplicate)
	}

	logger := utils.LoggerFromContext(ctx)
	logger.Info().Str("transaction_id", txID.String()).Msg("transaction recorded")

	ws.notifier.Notify(ctx, models.OutcomeConfirm, txID)

	return nil
}
