package services

import (
	"github.com/IfedayoAwe/webhook-callback-service/config"
	"github.com/IfedayoAwe/webhook-callback-service/models"
)

type Services struct {
	Config *config.Config

	ledger   LedgerService
	notifier NotifierService
}

// NewServices wires the process-wide ledger and notifier. The ledger passed
// here is the single instance shared by every request.
func NewServices(cfg *config.Config, ledger LedgerService, notifier NotifierService) *Services {
	return &Services{
		Config:   cfg,
		ledger:   ledger,
		notifier: notifier,
	}
}

func (s *Services) Ledger() LedgerService {
	return s.ledger
}

func (s *Services) Notifier() NotifierService {
	return s.notifier
}

func (s *Services) Webhook() WebhookService {
	return &webhookService{
		token:    models.WebhookToken(s.Config.WebhookToken),
		ledger:   s.ledger,
		notifier: s.notifier,
	}
}
