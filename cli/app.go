package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	shop "github.com/cherryprincess/shopping-cart-APP"
	"github.com/cherryprincess/shopping-cart-APP/cache"
	"github.com/cherryprincess/shopping-cart-APP/cart"
	"github.com/cherryprincess/shopping-cart-APP/catalog"
	"github.com/cherryprincess/shopping-cart-APP/config"
	"github.com/cherryprincess/shopping-cart-APP/driver"
	"github.com/cherryprincess/shopping-cart-APP/event"
)

// app holds the service and every connection opened for it.
type app struct {
	service shop.Service
	closers []func() error
	logger  *zap.Logger
}

func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (_ *app, err error) {
	a := &app{logger: logger}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	var (
		catalogCache catalog.Cache
		processed    = event.NewMemoryRepository(event.DefaultRetention)
		conn         shop.Conn
	)

	if cfg.Redis.Addr != "" {
		client, err := driver.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		catalogCache = cache.New(client, "shop")
		processed = event.NewRedisRepository(client, event.DefaultRetention, logger)
		logger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	products, err := a.newCatalog(ctx, cfg, catalogCache)
	if err != nil {
		return nil, err
	}

	if cfg.NATS.URL != "" {
		natsConn, err := driver.ConnectNATS(cfg.NATS.URL, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error {
			natsConn.Close()
			return nil
		})
		conn = natsConn
		logger.Info("Connected to NATS", zap.String("url", cfg.NATS.URL))
	}

	service, err := shop.NewService(
		products,
		cart.NewManager(cfg.Currency(), logger),
		processed,
		conn,
		shop.Options{
			CommandSubject: cfg.NATS.CommandSubject,
			EventSubject:   cfg.NATS.EventSubject,
			Workers:        cfg.Workers,
		},
		logger,
	)
	if err != nil {
		return nil, err
	}
	// service first: it must stop consuming before NATS closes
	a.closers = append([]func() error{service.Close}, a.closers...)
	a.service = service

	return a, nil
}

func (a *app) newCatalog(ctx context.Context, cfg config.Config, catalogCache catalog.Cache) (catalog.Repository, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceStatic:
		return catalog.NewStaticRepository(catalog.DefaultProducts())
	case config.CatalogSourceFile:
		return catalog.NewFileRepository(cfg.Catalog.File)
	case config.CatalogSourcePostgres:
		db, err := driver.ConnectSQL(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error {
			db.Pool.Close()
			return nil
		})
		tm := driver.NewTransactionManager(db.Pool, a.logger)
		return catalog.NewPostgresRepository(tm, catalogCache, cfg.Redis.TTL, a.logger), nil
	}
	return nil, fmt.Errorf("%w: unknown catalog.source %q", config.ErrInvalidConfig, cfg.Catalog.Source)
}

func (a *app) Close() error {
	var errs []error
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
