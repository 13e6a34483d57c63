package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/cherryprincess/shopping-cart-APP/cart"
	"github.com/cherryprincess/shopping-cart-APP/models"
	"github.com/cherryprincess/shopping-cart-APP/models/enum"
)

const (
	DefaultCommandSubject = "cart.commands"
	DefaultEventSubject   = "cart.events"
)

// Conn is the part of *nats.Conn the event manager uses.
type Conn interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error)
}

type CommandHandler func(context.Context, *models.Command) error

// EventManager receives cart commands from NATS and publishes a cart event
// after every change. A nil Conn disables both directions.
type EventManager struct {
	conn           Conn
	commandSubject string
	eventSubject   string
	subscription   *nats.Subscription
	handlers       map[enum.CommandType]CommandHandler
	logger         *zap.Logger
}

func NewEventManager(conn Conn, commandSubject, eventSubject string, logger *zap.Logger) *EventManager {
	if commandSubject == "" {
		commandSubject = DefaultCommandSubject
	}
	if eventSubject == "" {
		eventSubject = DefaultEventSubject
	}
	return &EventManager{
		conn:           conn,
		commandSubject: commandSubject,
		eventSubject:   eventSubject,
		handlers:       make(map[enum.CommandType]CommandHandler),
		logger:         logger,
	}
}

func (em *EventManager) RegisterHandler(commandType enum.CommandType, handler CommandHandler) {
	em.handlers[commandType] = handler
}

func (em *EventManager) GetHandler(commandType enum.CommandType) (CommandHandler, bool) {
	handler, exists := em.handlers[commandType]
	return handler, exists
}

// SubscribeToCommands hands every well-formed command message to wp.
func (em *EventManager) SubscribeToCommands(wp *WorkerPool) error {
	if em.conn == nil {
		return nil
	}

	sub, err := em.conn.Subscribe(em.commandSubject, func(msg *nats.Msg) {
		cmd, err := decodeCommand(msg.Data)
		if err != nil {
			em.logger.Error("Failed to decode command", zap.String("subject", msg.Subject), zap.Error(err))
			return
		}

		wp.Submit(context.Background(), cmd)
	})
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", em.commandSubject, err)
	}

	em.subscription = sub
	em.logger.Info("Subscribed to cart commands", zap.String("subject", em.commandSubject))
	return nil
}

func decodeCommand(data []byte) (*models.Command, error) {
	var cmd models.Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return nil, err
	}
	if !cmd.Type.Valid() {
		return nil, fmt.Errorf("unknown command type %q", cmd.Type)
	}
	if cmd.ID == "" {
		cmd.ID = uuid.NewString()
	}
	if cmd.IssuedAt.IsZero() {
		cmd.IssuedAt = time.Now()
	}
	return &cmd, nil
}

// Publish sends change as a CartEvent on <event subject>.<event type>.
// Changes that left the cart as it was are not published.
func (em *EventManager) Publish(_ context.Context, change cart.Change) error {
	if em.conn == nil || !change.Changed() {
		return nil
	}

	event := models.CartEvent{
		ID:         uuid.NewString(),
		Type:       change.Type,
		ProductID:  change.ProductID,
		Cart:       cart.NewView(change.Cart),
		OccurredAt: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode cart event: %w", err)
	}

	subject := em.eventSubject + "." + string(event.Type)
	if err = em.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func (em *EventManager) Close() error {
	if em.subscription == nil {
		return nil
	}
	if err := em.subscription.Unsubscribe(); err != nil {
		return fmt.Errorf("unsubscribe %s: %w", em.commandSubject, err)
	}
	em.subscription = nil
	return nil
}
