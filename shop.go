// Package shop wires the product catalog, the cart state manager and the
// NATS command/event stream into one service.
package shop

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cherryprincess/shopping-cart-APP/cart"
	"github.com/cherryprincess/shopping-cart-APP/catalog"
	"github.com/cherryprincess/shopping-cart-APP/event"
	"github.com/cherryprincess/shopping-cart-APP/models"
	"github.com/cherryprincess/shopping-cart-APP/models/enum"
)

type Service interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID uint64) (*models.Product, error)

	GetCart(ctx context.Context) models.CartView
	AddToCart(ctx context.Context, productID uint64) (models.CartView, error)
	RemoveFromCart(ctx context.Context, productID uint64) (models.CartView, error)

	ProcessCommand(ctx context.Context, cmd *models.Command) error
	Close() error
}

type Options struct {
	CommandSubject string
	EventSubject   string
	// Workers is the number of goroutines applying NATS commands. Values
	// above 1 give up command ordering.
	Workers int
}

type service struct {
	catalog   catalog.Repository
	cart      *cart.Manager
	processed event.Repository

	eventManager *EventManager
	workerPool   *WorkerPool

	logger *zap.Logger
}

// NewService builds the service and, when conn is not nil, starts consuming
// cart commands from NATS.
func NewService(
	catalog catalog.Repository, manager *cart.Manager, processed event.Repository,
	conn Conn, opts Options,
	logger *zap.Logger) (Service, error) {
	s := &service{
		catalog:   catalog,
		cart:      manager,
		processed: processed,
		logger:    logger,
	}
	s.eventManager = NewEventManager(conn, opts.CommandSubject, opts.EventSubject, logger)
	s.workerPool = NewWorkerPool(opts.Workers, s, logger)
	s.registerCommandHandlers()

	// 訂閱指令
	if err := s.eventManager.SubscribeToCommands(s.workerPool); err != nil {
		s.workerPool.Shutdown()
		return nil, err
	}

	return s, nil
}

func (s *service) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, productID uint64) (*models.Product, error) {
	return s.catalog.GetByID(ctx, productID)
}

func (s *service) GetCart(_ context.Context) models.CartView {
	return cart.NewView(s.cart.Cart())
}

// AddToCart adds one unit of productID. An ID the catalog does not know
// leaves the cart unchanged and is not an error.
func (s *service) AddToCart(ctx context.Context, productID uint64) (models.CartView, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		s.logger.Warn("Product not in catalog, cart unchanged", zap.Uint64("product_id", productID))
		return s.GetCart(ctx), nil
	}
	if err != nil {
		return models.CartView{}, fmt.Errorf("failed to get product %d: %w", productID, err)
	}

	change := s.cart.AddToCart(*product)
	s.publish(ctx, change)

	return cart.NewView(change.Cart), nil
}

// RemoveFromCart removes one unit of productID. Removing a product that is
// not in the cart is a no-op.
func (s *service) RemoveFromCart(ctx context.Context, productID uint64) (models.CartView, error) {
	change := s.cart.RemoveFromCart(productID)
	s.publish(ctx, change)

	return cart.NewView(change.Cart), nil
}

// 狀態已經更新，發佈失敗只記錄不回傳
func (s *service) publish(ctx context.Context, change cart.Change) {
	if err := s.eventManager.Publish(ctx, change); err != nil {
		s.logger.Error("Failed to publish cart event",
			zap.String("event_type", string(change.Type)),
			zap.Uint64("product_id", change.ProductID),
			zap.Error(err))
	}
}

func (s *service) registerCommandHandlers() {
	commandHandlers := map[enum.CommandType]CommandHandler{
		enum.CommandTypeAdd:    s.handleAddCommand,
		enum.CommandTypeRemove: s.handleRemoveCommand,
	}

	for commandType, handler := range commandHandlers {
		s.eventManager.RegisterHandler(commandType, handler)
	}
}

func (s *service) handleAddCommand(ctx context.Context, cmd *models.Command) error {
	_, err := s.AddToCart(ctx, cmd.ProductID)
	return err
}

func (s *service) handleRemoveCommand(ctx context.Context, cmd *models.Command) error {
	_, err := s.RemoveFromCart(ctx, cmd.ProductID)
	return err
}

// ProcessCommand applies cmd once; a command ID seen before is skipped.
func (s *service) ProcessCommand(ctx context.Context, cmd *models.Command) error {
	handler, exists := s.eventManager.GetHandler(cmd.Type)
	if !exists {
		return fmt.Errorf("no handler registered for command type: %s", cmd.Type)
	}

	if s.processed != nil {
		first, err := s.processed.Claim(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if !first {
			s.logger.Info("Command already processed", zap.String("command_id", cmd.ID))
			return nil
		}
	}

	if err := handler(ctx, cmd); err != nil {
		s.logger.Error("Failed to handle command",
			zap.String("command_id", cmd.ID),
			zap.String("command_type", string(cmd.Type)),
			zap.Error(err),
		)
		return err
	}

	s.logger.Debug("Cart command processed", zap.String("command_id", cmd.ID))
	return nil
}

// Close stops consuming commands and waits for queued ones.
func (s *service) Close() error {
	err := s.eventManager.Close()
	s.workerPool.Shutdown()
	return err
}
