package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/trift-shop/storefront/config"
	"github.com/trift-shop/storefront/internal/adapter"
	"github.com/trift-shop/storefront/internal/adapter/catalog"
	"github.com/trift-shop/storefront/internal/adapter/httphandler"
	"github.com/trift-shop/storefront/internal/adapter/kafka"
	"github.com/trift-shop/storefront/internal/adapter/statestore"
	"github.com/trift-shop/storefront/internal/core/port"
	"github.com/trift-shop/storefront/internal/core/service"
	"github.com/trift-shop/storefront/pkg/retry"
	"github.com/trift-shop/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

const storeConnectAttempts = 3

type App struct {
	ctx        context.Context
	cfg        config.Config
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()

	cat := catalog.MustLoad()
	store := app.initStateStore()
	producer := app.initEventProducer()

	app.service = service.New(cat, store, producer)
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

// initStateStore picks the durable store by config precedence
// redis > postgres > memory. Connectivity at boot is retried with
// backoff; state writes themselves never are.
func (app *App) initStateStore() port.StateStore {
	const op = "App.initStateStore"

	retryCfg := retry.RetryConfig{MaxAttempts: storeConnectAttempts}

	switch {
	case app.cfg.StateStore.RedisAddr != "":
		store, err := retry.DoWithResult(app.ctx, retryCfg,
			func() (*statestore.RedisStore, error) {
				return statestore.NewRedisStore(
					app.ctx,
					app.cfg.StateStore.RedisAddr,
					app.cfg.StateStore.RedisTTL,
				)
			})
		if err != nil {
			app.fallDown(op, err)
		}
		return store
	case app.cfg.StateStore.PostgresDSN != "":
		store, err := retry.DoWithResult(app.ctx, retryCfg,
			func() (*statestore.SQLStore, error) {
				return statestore.NewSQLStore(app.ctx, app.cfg.StateStore.PostgresDSN)
			})
		if err != nil {
			app.fallDown(op, err)
		}
		return store
	default:
		slog.Warn("no state store configured, session state is in-memory only",
			"op", op)
		return statestore.NewMemoryStore()
	}
}

func (app *App) initEventProducer() port.EventProducer {
	const op = "App.initEventProducer"

	if !app.cfg.Broker.Enabled() {
		slog.Info("event streaming disabled", "op", op)
		return kafka.NoopProducer{}
	}

	srClient, err := sr.NewClient(sr.URLs(app.cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	subject := app.cfg.Broker.ClientEventsTopic + "-value"
	serde, err := schema.NewSerdeClientEventV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.ClientEventsTopic,
			app.brokerTLS(),
		),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	return producer
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service)
	httphandler.RegisterSearch(mux, app.service)
	httphandler.RegisterCart(mux, app.service)
	httphandler.RegisterWishlist(mux, app.service)
	httphandler.RegisterBadges(mux, app.service, app.service)

	handler := httphandler.Session(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.service.Close()

	slog.Info("application is closed")
}

func (app *App) brokerTLS() *tls.Config {
	if !app.cfg.Broker.TLS.Enabled() {
		return nil
	}
	return adapter.MakeTLSConfig(
		app.cfg.Broker.TLS.CAPath,
		app.cfg.Broker.TLS.CertPath,
		app.cfg.Broker.TLS.KeyPath,
	)
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
