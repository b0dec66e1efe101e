package middleware

import (
	"github.com/IfedayoAwe/webhook-callback-service/models"
	"github.com/labstack/echo/v4"
)

const (
	WebhookTokenHeader = "X-Webhook-Token"
	WebhookTokenKey    = "webhook_token"
)

// WebhookTokenMiddleware records the presented X-Webhook-Token, if any, on
// the context. It never rejects: the token is judged only after the body has
// been parsed, so a malformed body is reported as such whatever the token.
func WebhookTokenMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			values := c.Request().Header.Values(WebhookTokenHeader)
			if len(values) > 0 {
				c.Set(WebhookTokenKey, models.WebhookToken(values[0]))
			}
			return next(c)
		}
	}
}

// GetWebhookToken returns the token stored by WebhookTokenMiddleware, or nil
// when the header was not sent.
func GetWebhookToken(c echo.Context) *models.WebhookToken {
	token, ok := c.Get(WebhookTokenKey).(models.WebhookToken)
	if !ok {
		return nil
	}
	return &token
}
