package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/welcomehome/inventory/internal/model"
	"github.com/welcomehome/inventory/internal/queue"
	"github.com/welcomehome/inventory/internal/repository"
)

// StartOrder creates an order for a client and makes it the session's
// active order. Requires an elevated session; the client must be a
// registered user.
func (a *App) StartOrder(ctx context.Context, sess *Session, clientUsername string) (string, error) {
	if sess == nil {
		return "", ErrAuthenticationRequired
	}
	if !sess.Role.Elevated() {
		return "", ErrNotAuthorized
	}
	ok, err := a.users.Exists(ctx, clientUsername)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", repository.ErrNotFound
	}

	order := model.Order{
		OrderID:        uuid.NewString(),
		ClientUsername: clientUsername,
		Status:         model.OrderInProgress,
		CreatedAt:      time.Now().UTC(),
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := a.orders.CreateTx(ctx, tx, order); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	committed = true

	sess.SetActiveOrder(order.OrderID)
	return order.OrderID, nil
}

// AddToOrder associates an available item with the session's active
// order and transitions it to ordered. The availability check, the
// association insert and the status update share one transaction, so
// two orders can never claim the same item.
func (a *App) AddToOrder(ctx context.Context, sess *Session, itemID string) error {
	if sess == nil {
		return ErrAuthenticationRequired
	}
	orderID := sess.ActiveOrder()
	if orderID == "" {
		return ErrNoActiveOrder
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	status, err := a.items.StatusTx(ctx, tx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemUnavailable
		}
		return err
	}
	if status != model.ItemAvailable {
		return ErrItemUnavailable
	}
	if err := a.orders.AddItemTx(ctx, tx, orderID, itemID); err != nil {
		return err
	}
	if err := a.items.UpdateStatusTx(ctx, tx, itemID, model.ItemOrdered); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// PrepareOrder moves every item in the order to the ready status at
// the delivery holding location and marks the order ready_for_delivery.
// All item updates and the order update commit atomically; a partial
// failure leaves neither items nor order changed. Unknown orders fail
// with repository.ErrNotFound.
func (a *App) PrepareOrder(ctx context.Context, orderID string) error {
	order, err := a.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := a.items.MarkOrderReadyTx(ctx, tx, orderID, model.ItemReady, model.DeliveryHolding); err != nil {
		return err
	}
	if err := a.orders.UpdateStatusTx(ctx, tx, orderID, model.OrderReadyForDelivery); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	if a.publisher != nil {
		pairs, err := a.orders.ItemsWithLocations(ctx, orderID)
		if err == nil {
			ids := make([]string, 0, len(pairs))
			for _, p := range pairs {
				ids = append(ids, p.ItemID)
			}
			ev := queue.OrderPreparedEvent{
				OrderID:        orderID,
				ClientUsername: order.ClientUsername,
				ItemIDs:        ids,
				Location:       model.DeliveryHolding,
				PreparedAt:     time.Now().UTC().Format(time.RFC3339),
			}
			if err := a.publisher.PublishOrderPrepared(ctx, ev); err != nil {
				log.Printf("order event publish failed: %v", err)
			}
		}
	}
	return nil
}
