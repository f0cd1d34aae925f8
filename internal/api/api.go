package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"loja-service/internal/database"
	"loja-service/internal/service"
)

// IdempotentKeyHeader carries the client's retry key on POST /carrinhos and
// POST /pedidos.
const IdempotentKeyHeader = "Idempotent-Key"

// crudService is the part of a service every entity handler needs.
type crudService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, v T) (int, error)
	Update(ctx context.Context, id int, fields map[string]any) error
	Delete(ctx context.Context, id int) error
}

// RequestValidator plugs validator/v10 into echo.Context.Validate and reports
// fields by their JSON name.
type RequestValidator struct {
	v *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{v: v}
}

func (rv *RequestValidator) Validate(i any) error {
	return rv.v.Struct(i)
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"erro": msg})
}

// inputError is a malformed request; its message goes to the client as is.
type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func parseID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, &inputError{"ID inválido"}
	}
	return id, nil
}

// bindInput decodes the JSON body into in and, when validate is set, runs the
// struct's validate tags.
func bindInput(c echo.Context, in any, validate bool) error {
	if err := c.Bind(in); err != nil {
		return &inputError{"Dados de entrada inválidos"}
	}
	if !validate {
		return nil
	}
	if err := c.Validate(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			if verrs[0].Tag() == "required" {
				return &inputError{fmt.Sprintf("Campo obrigatório ausente: %s", verrs[0].Field())}
			}
			return &inputError{fmt.Sprintf("Valor inválido para o campo: %s", verrs[0].Field())}
		}
		return &inputError{"Dados de entrada inválidos"}
	}
	return nil
}

// statusFor maps an error kind to a status and a client-facing message.
func statusFor(err error) (int, string) {
	var inErr *inputError
	switch {
	case errors.As(err, &inErr):
		return http.StatusBadRequest, inErr.msg
	case errors.Is(err, database.ErrNoFields):
		return http.StatusBadRequest, "Nenhum campo para atualizar"
	case errors.Is(err, service.ErrInsufficientStock):
		return http.StatusBadRequest, "Quantidade solicitada não disponível"
	case errors.Is(err, service.ErrCustomerNotFound):
		return http.StatusNotFound, "Cliente não encontrado"
	case errors.Is(err, service.ErrSupplierNotFound):
		return http.StatusNotFound, "Fornecedor não encontrado"
	case errors.Is(err, service.ErrProductNotFound):
		return http.StatusNotFound, "Produto não encontrado"
	case errors.Is(err, service.ErrCartItemNotFound):
		return http.StatusNotFound, "Carrinho não encontrado"
	case errors.Is(err, service.ErrOrderNotFound):
		return http.StatusNotFound, "Pedido não encontrado"
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, "Registro não encontrado"
	case errors.Is(err, service.ErrDuplicateRequest):
		return http.StatusConflict, "Requisição já processada"
	case errors.Is(err, database.ErrConstraint):
		return http.StatusConflict, "Violação de integridade dos dados"
	case errors.Is(err, database.ErrUnavailable):
		return http.StatusInternalServerError, "Erro ao conectar ao banco de dados"
	default:
		return http.StatusInternalServerError, "Erro interno do servidor"
	}
}

func fail(c echo.Context, err error) error {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return errorJSON(c, status, msg)
}
