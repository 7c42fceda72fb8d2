package app

import (
	"context"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/Mazdaratti/bestbuy/internal/catalog"
	"github.com/Mazdaratti/bestbuy/internal/cli"
	"github.com/Mazdaratti/bestbuy/internal/domain/order"
	"github.com/Mazdaratti/bestbuy/internal/domain/store"
	"github.com/Mazdaratti/bestbuy/internal/repository"
)

// Run creates all dependencies and drives the interactive store session.
// It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Metrics, cfg *Config) error {
	lg.Info("Loading catalog", zap.String("path", cfg.CatalogPath))

	file, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}
	products, err := file.Build()
	if err != nil {
		return errors.Wrap(err, "build catalog")
	}

	s := store.New(products...)
	ledger := repository.NewMemoryLedger()
	orderService := order.NewService(s, ledger)

	metrics, err := newMetrics(m)
	if err != nil {
		return errors.Wrap(err, "create metrics")
	}

	lg.Info("Store ready",
		zap.Int("products", len(products)),
		zap.Int("total_quantity", s.TotalQuantity()),
	)

	c := cli.New(s, orderService, os.Stdin, os.Stdout, lg, metrics)
	return c.Run(ctx)
}

func newMetrics(m *app.Metrics) (cli.Metrics, error) {
	meter := m.MeterProvider().Meter("bestbuy")

	placed, err := meter.Int64Counter("store.orders_placed",
		metric.WithDescription("Orders committed in full"))
	if err != nil {
		return cli.Metrics{}, err
	}
	failed, err := meter.Int64Counter("store.orders_failed",
		metric.WithDescription("Order batches rejected or failed partway"))
	if err != nil {
		return cli.Metrics{}, err
	}

	return cli.Metrics{OrdersPlaced: placed, OrdersFailed: failed}, nil
}
