package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"loja-service/internal/entity"
)

type SupplierHandler struct {
	supplierService crudService[entity.Supplier]
}

func NewSupplierHandler(supplierService crudService[entity.Supplier]) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// ListSuppliers --> GET /fornecedores
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	suppliers, err := h.supplierService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"fornecedores": suppliers})
}

// CreateSupplier --> POST /fornecedores
func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	var in entity.SupplierInput
	if err := bindInput(c, &in, true); err != nil {
		return fail(c, err)
	}

	supplier := in.Supplier()
	id, err := h.supplierService.Create(c.Request().Context(), supplier)
	if err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("O fornecedor %s com id %d foi cadastrado com sucesso!", supplier.Nome, id))
}

// UpdateSupplier --> PUT /fornecedores/:id
func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in entity.SupplierInput
	if err := bindInput(c, &in, false); err != nil {
		return fail(c, err)
	}

	if err := h.supplierService.Update(c.Request().Context(), id, in.Fields()); err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("O fornecedor de id %d foi atualizado com sucesso!", id))
}

// GetSupplier --> GET /fornecedores/:id
func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	supplier, err := h.supplierService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"fornecedor": supplier})
}

// DeleteSupplier --> DELETE /fornecedores/:id
func (h *SupplierHandler) DeleteSupplier(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.supplierService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("Fornecedor de id %d deletado com sucesso!", id))
}
