package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"loja-service/internal/entity"
)

type ProductHandler struct {
	productService crudService[entity.Product]
}

func NewProductHandler(productService crudService[entity.Product]) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts --> GET /produtos
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"produtos": products})
}

// CreateProduct --> POST /produtos
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var in entity.ProductInput
	if err := bindInput(c, &in, true); err != nil {
		return fail(c, err)
	}

	product := in.Product()
	id, err := h.productService.Create(c.Request().Context(), product)
	if err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("O produto %s de id %d foi cadastrado com sucesso!", product.Nome, id))
}

// UpdateProduct --> PUT /produtos/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in entity.ProductInput
	if err := bindInput(c, &in, false); err != nil {
		return fail(c, err)
	}

	if err := h.productService.Update(c.Request().Context(), id, in.Fields()); err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("O produto de id %d foi atualizado com sucesso!", id))
}

// GetProduct --> GET /produtos/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"produto": product})
}

// DeleteProduct --> DELETE /produtos/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("Produto de id %d deletado com sucesso!", id))
}
