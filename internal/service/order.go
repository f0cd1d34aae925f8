package service

import (
	"context"
	"fmt"

	"loja-service/internal/entity"
)

type OrderService struct {
	crud[entity.Order]
	customers existsLookup
	carts     existsLookup
	guard     IdempotencyGuard
	events    EventPublisher
}

func NewOrderService(orders store[entity.Order], customers, carts existsLookup, guard IdempotencyGuard, events EventPublisher) *OrderService {
	return &OrderService{
		crud:      crud[entity.Order]{repo: orders, kind: "order", notFound: ErrOrderNotFound},
		customers: customers,
		carts:     carts,
		guard:     guard,
		events:    events,
	}
}

// Create inserts an order once its customer and cart line are known to exist.
func (s *OrderService) Create(ctx context.Context, order entity.Order, idempotentKey string) (int, error) {
	if err := checkExists(ctx, s.customers, order.ClienteID, ErrCustomerNotFound); err != nil {
		return 0, err
	}
	if err := checkExists(ctx, s.carts, order.CarrinhoID, ErrCartItemNotFound); err != nil {
		return 0, err
	}

	if err := claim(ctx, s.guard, idempotentKey); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		release(ctx, s.guard, idempotentKey)
		logger.Error().Err(err).Msg("Error creating order")
		return 0, err
	}

	order.ID = id
	publish(ctx, s.events, orderEventKey("criado", id), order)
	return id, nil
}

func (s *OrderService) Update(ctx context.Context, id int, fields map[string]any) error {
	if err := s.crud.Update(ctx, id, fields); err != nil {
		return err
	}
	publish(ctx, s.events, orderEventKey("atualizado", id), map[string]any{"id": id, "campos": fields})
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	found, err := s.crud.delete(ctx, id)
	if err != nil {
		return err
	}
	if found {
		publish(ctx, s.events, orderEventKey("removido", id), map[string]int{"id": id})
	}
	return nil
}

// pedido-criado-1, pedido-atualizado-1, ...
func orderEventKey(event string, id int) string {
	return fmt.Sprintf("pedido-%s-%d", event, id)
}
