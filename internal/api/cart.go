package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"loja-service/internal/entity"
)

type cartService interface {
	List(ctx context.Context) ([]entity.CartItem, error)
	ListByCustomer(ctx context.Context, customerID int) ([]entity.CustomerCartLine, error)
	Get(ctx context.Context, id int) (*entity.CartItem, error)
	Create(ctx context.Context, item entity.CartItem, idempotentKey string) (int, error)
	Update(ctx context.Context, id int, fields map[string]any) error
	Delete(ctx context.Context, id int) error
}

type CartHandler struct {
	cartService cartService
}

func NewCartHandler(cartService cartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddCartItem --> POST /carrinhos
func (h *CartHandler) AddCartItem(c echo.Context) error {
	var in entity.CartItemInput
	if err := bindInput(c, &in, true); err != nil {
		return fail(c, err)
	}

	item := in.CartItem()
	key := c.Request().Header.Get(IdempotentKeyHeader)
	id, err := h.cartService.Create(c.Request().Context(), item, key)
	if err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("O produto %d foi adicionado ao carrinho de id %d, que pertence ao cliente de id %d", item.ProdutoID, id, item.ClienteID))
}

// ListCartItems --> GET /carrinhos
func (h *CartHandler) ListCartItems(c echo.Context) error {
	items, err := h.cartService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"carrinhos": items})
}

// ListCustomerCart --> GET /carrinhos/cliente/:cliente_id
func (h *CartHandler) ListCustomerCart(c echo.Context) error {
	customerID, err := parseID(c, "cliente_id")
	if err != nil {
		return fail(c, err)
	}
	lines, err := h.cartService.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"carrinhos": lines})
}

// UpdateCartItem --> PUT /carrinhos/:id
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var patch entity.CartItemPatch
	if err := bindInput(c, &patch, true); err != nil {
		return fail(c, err)
	}

	if err := h.cartService.Update(c.Request().Context(), id, patch.Fields()); err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("O carrinho de id %d foi atualizado com sucesso!", id))
}

// GetCartItem --> GET /carrinhos/:id
func (h *CartHandler) GetCartItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	item, err := h.cartService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"carrinho": item})
}

// DeleteCartItem --> DELETE /carrinhos/:id
func (h *CartHandler) DeleteCartItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.cartService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("O carrinho de id %d foi deletado com sucesso!", id))
}
