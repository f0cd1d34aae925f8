package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"loja-service/internal/entity"
)

type orderService interface {
	List(ctx context.Context) ([]entity.Order, error)
	Get(ctx context.Context, id int) (*entity.Order, error)
	Create(ctx context.Context, order entity.Order, idempotentKey string) (int, error)
	Update(ctx context.Context, id int, fields map[string]any) error
	Delete(ctx context.Context, id int) error
}

type OrderHandler struct {
	orderService orderService
}

func NewOrderHandler(orderService orderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders --> GET /pedidos
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"pedidos": orders})
}

// CreateOrder --> POST /pedidos
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var in entity.OrderInput
	if err := bindInput(c, &in, true); err != nil {
		return fail(c, err)
	}

	key := c.Request().Header.Get(IdempotentKeyHeader)
	id, err := h.orderService.Create(c.Request().Context(), in.Order(), key)
	if err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("O pedido de id %d foi cadastrado com sucesso!", id))
}

// GetOrder --> GET /pedidos/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	order, err := h.orderService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"pedido": order})
}

// UpdateOrder --> PUT /pedidos/:id
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var patch entity.OrderPatch
	if err := bindInput(c, &patch, false); err != nil {
		return fail(c, err)
	}

	if err := h.orderService.Update(c.Request().Context(), id, patch.Fields()); err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("O pedido de id %d foi atualizado com sucesso!", id))
}

// CancelOrder --> DELETE /pedidos/:id
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.orderService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("Pedido de id %d deletado com sucesso!", id))
}
