package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"loja-service/internal/entity"
)

type CustomerHandler struct {
	customerService crudService[entity.Customer]
}

// NewCustomerHandler creates a new instance of CustomerHandler
func NewCustomerHandler(customerService crudService[entity.Customer]) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// ListCustomers --> GET /clientes
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"clientes": customers})
}

// CreateCustomer --> POST /clientes
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var in entity.CustomerInput
	if err := bindInput(c, &in, true); err != nil {
		return fail(c, err)
	}

	customer := in.Customer()
	id, err := h.customerService.Create(c.Request().Context(), customer)
	if err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("O cliente %s com id %d foi cadastrado com sucesso!", customer.Nome, id))
}

// UpdateCustomer --> PUT /clientes/:id
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in entity.CustomerInput
	if err := bindInput(c, &in, false); err != nil {
		return fail(c, err)
	}

	if err := h.customerService.Update(c.Request().Context(), id, in.Fields()); err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("O cliente de id %d foi atualizado com sucesso!", id))
}

// GetCustomer --> GET /clientes/:id
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	customer, err := h.customerService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"cliente": customer})
}

// DeleteCustomer --> DELETE /clientes/:id
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.customerService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("Cliente de id %d deletado com sucesso!", id))
}
