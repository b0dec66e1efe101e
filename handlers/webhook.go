package handlers

import (
	"errors"
	"io"

	"github.com/IfedayoAwe/webhook-callback-service/handlers/requests"
	"github.com/IfedayoAwe/webhook-callback-service/middleware"
	service "github.com/IfedayoAwe/webhook-callback-service/services"
	"github.com/IfedayoAwe/webhook-callback-service/utils"
	"github.com/labstack/echo/v4"
)

type WebhookHandler interface {
	ReceiveWebhook(c echo.Context) error
}

type webhookHandler struct {
	services *service.Services
}

func (h *Handlers) Webhook() WebhookHandler {
	return &webhookHandler{
		services: h.services,
	}
}

func (wh *webhookHandler) ReceiveWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// body limit exceeded and similar errors carry their own status
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return utils.BadRequest(c, utils.MalformedJSONMessage)
	}

	webhookReq, err := requests.DecodeWebhookRequest(body)
	if err != nil {
		return utils.BadRequest(c, utils.MalformedJSONMessage)
	}

	token := middleware.GetWebhookToken(c)

	err = wh.services.Webhook().ProcessWebhook(c.Request().Context(), token, webhookReq.ToPayload())
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.Success(c, service.MsgWebhookProcessed)
}
