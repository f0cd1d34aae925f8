package service

import (
	"context"
	"errors"
	"fmt"

	"loja-service/internal/database"
	"loja-service/internal/entity"
)

type cartStore interface {
	store[entity.CartItem]
	ListByCustomer(ctx context.Context, customerID int) ([]entity.CustomerCartLine, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// existsLookup is implemented by the customer and cart repositories.
type existsLookup interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type stockLookup interface {
	Stock(ctx context.Context, productID int) (int, error)
}

type CartService struct {
	crud[entity.CartItem]
	carts     cartStore
	customers existsLookup
	products  stockLookup
	guard     IdempotencyGuard
	events    EventPublisher
}

func NewCartService(carts cartStore, customers existsLookup, products stockLookup, guard IdempotencyGuard, events EventPublisher) *CartService {
	return &CartService{
		crud:      crud[entity.CartItem]{repo: carts, kind: "cart item", notFound: ErrCartItemNotFound},
		carts:     carts,
		customers: customers,
		products:  products,
		guard:     guard,
		events:    events,
	}
}

// Create inserts a cart line after checking that the customer and product
// exist and that the product has enough recorded stock. Stock is not
// reserved: the check and the insert are separate statements, so two
// concurrent requests may both pass against the same stock.
func (s *CartService) Create(ctx context.Context, item entity.CartItem, idempotentKey string) (int, error) {
	if err := checkExists(ctx, s.customers, item.ClienteID, ErrCustomerNotFound); err != nil {
		return 0, err
	}

	stock, err := s.products.Stock(ctx, item.ProdutoID)
	if errors.Is(err, database.ErrNotFound) {
		return 0, ErrProductNotFound
	}
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking product stock for product %d", item.ProdutoID)
		return 0, err
	}
	if item.Quantidade > stock {
		logger.Warn().Msgf("Product %d out of stock: requested %d, available %d", item.ProdutoID, item.Quantidade, stock)
		return 0, ErrInsufficientStock
	}

	if err := claim(ctx, s.guard, idempotentKey); err != nil {
		return 0, err
	}

	id, err := s.carts.Create(ctx, item)
	if err != nil {
		release(ctx, s.guard, idempotentKey)
		logger.Error().Err(err).Msg("Error creating cart item")
		return 0, err
	}

	item.ID = id
	publish(ctx, s.events, fmt.Sprintf("carrinho-criado-%d", id), item)
	return id, nil
}

// ListByCustomer does not check that the customer exists; an unknown
// customer simply has no lines.
func (s *CartService) ListByCustomer(ctx context.Context, customerID int) ([]entity.CustomerCartLine, error) {
	lines, err := s.carts.ListByCustomer(ctx, customerID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing cart items for customer %d", customerID)
		return nil, err
	}
	return lines, nil
}

func checkExists(ctx context.Context, l existsLookup, id int, notFound error) error {
	ok, err := l.Exists(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error looking up %d", id)
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}
