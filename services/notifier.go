package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/IfedayoAwe/webhook-callback-service/models"
	"github.com/IfedayoAwe/webhook-callback-service/utils"
)

const callbackTimeout = 10 * time.Second

// NotifierService tells the callback service how a transaction ended.
// Failures are logged and reported through the return value only; nothing
// is retried.
type NotifierService interface {
	Notify(ctx context.Context, outcome models.CallbackOutcome, id models.TransactionID) bool
}

type notifierService struct {
	baseURL string
	client  *http.Client
}

// NewNotifierService posts to baseURL/<outcome>. A nil client gets a default
// one with a request timeout.
func NewNotifierService(baseURL string, client *http.Client) NotifierService {
	if client == nil {
		client = &http.Client{Timeout: callbackTimeout}
	}
	return &notifierService{
		baseURL: baseURL,
		client:  client,
	}
}

func (ns *notifierService) Notify(ctx context.Context, outcome models.CallbackOutcome, id models.TransactionID) (delivered bool) {
	logger := utils.LoggerFromContext(ctx).With().
		Str("outcome", string(outcome)).
		Str("transaction_id", id.String()).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("callback notification panicked")
			delivered = false
		}
	}()

	// the inbound request may be gone by now; the callback still has to go out
	ctx = context.WithoutCancel(ctx)

	status, err := ns.send(ctx, outcome, id)
	if err != nil {
		logger.Error().Err(err).Msg("callback notification failed")
		return false
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		logger.Warn().Int("status", status).Msg("callback service rejected notification")
		return false
	}

	logger.Info().Int("status", status).Msg("callback notification sent")
	return true
}

func (ns *notifierService) send(ctx context.Context, outcome models.CallbackOutcome, id models.TransactionID) (int, error) {
	if !outcome.IsValid() {
		return 0, fmt.Errorf("unknown callback outcome: %s", outcome)
	}

	payload := models.CallbackPayload{TransactionID: id}
	if err := utils.InitValidator().Struct(payload); err != nil {
		return 0, fmt.Errorf("validate callback payload: %v", utils.FormatValidationErrors(err))
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal callback payload: %w", err)
	}

	endpoint, err := url.JoinPath(ns.baseURL, string(outcome))
	if err != nil {
		return 0, fmt.Errorf("build callback url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if traceID := utils.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set(utils.TraceIDHeader, traceID)
	}

	resp, err := ns.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
