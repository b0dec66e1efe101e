package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IfedayoAwe/webhook-callback-service/config"
	"github.com/IfedayoAwe/webhook-callback-service/handlers"
	"github.com/IfedayoAwe/webhook-callback-service/routes"
	service "github.com/IfedayoAwe/webhook-callback-service/services"
	"github.com/IfedayoAwe/webhook-callback-service/utils"

	echo "github.com/labstack/echo/v4"
)

func main() {
	utils.InitLogger()
	logger := utils.Logger

	if err := run(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func run() error {
	logger := utils.Logger
	cfg := config.Load()
	utils.SetLogLevel(cfg.LogLevel)

	if err := cfg.Validate(utils.InitValidator()); err != nil {
		return fmt.Errorf("invalid configuration: %v", utils.FormatValidationErrors(err))
	}

	ledger := service.NewLedgerService()
	notifier := service.NewNotifierService(cfg.CallbackBaseURL(), nil)

	services := service.NewServices(&cfg, ledger, notifier)
	newHandlers := handlers.NewHandlers(services)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	routes.Register(e, &cfg, newHandlers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", cfg.Addr()).
			Str("callback_url", cfg.CallbackBaseURL()).
			Msg("Webhook service running")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Int("ledger_size", ledger.Size()).Msg("Webhook service shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
