package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Customers *CustomerHandler
	Suppliers *SupplierHandler
	Products  *ProductHandler
	Carts     *CartHandler
	Orders    *OrderHandler
	DB        pinger
}

type Options struct {
	// RateLimit is requests per second per client; zero turns the limiter off.
	RateLimit float64
	RateBurst int
}

func NewServer(h Handlers, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	// Client IPs come from the socket only; forwarding headers are not trusted.
	e.IPExtractor = echo.ExtractIPDirect()
	e.Validator = NewRequestValidator()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger())
	if opts.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(rateLimiterConfig(opts)))
	}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "API em execução"})
	})
	e.GET("/health", healthHandler(h.DB))

	// Routes
	e.GET("/clientes", h.Customers.ListCustomers)
	e.POST("/clientes", h.Customers.CreateCustomer)
	e.PUT("/clientes/:id", h.Customers.UpdateCustomer)
	e.GET("/clientes/:id", h.Customers.GetCustomer)
	e.DELETE("/clientes/:id", h.Customers.DeleteCustomer)

	e.GET("/fornecedores", h.Suppliers.ListSuppliers)
	e.POST("/fornecedores", h.Suppliers.CreateSupplier)
	e.PUT("/fornecedores/:id", h.Suppliers.UpdateSupplier)
	e.GET("/fornecedores/:id", h.Suppliers.GetSupplier)
	e.DELETE("/fornecedores/:id", h.Suppliers.DeleteSupplier)

	e.GET("/produtos", h.Products.ListProducts)
	e.POST("/produtos", h.Products.CreateProduct)
	e.PUT("/produtos/:id", h.Products.UpdateProduct)
	e.GET("/produtos/:id", h.Products.GetProduct)
	e.DELETE("/produtos/:id", h.Products.DeleteProduct)

	e.POST("/carrinhos", h.Carts.AddCartItem)
	e.GET("/carrinhos", h.Carts.ListCartItems)
	e.PUT("/carrinhos/:id", h.Carts.UpdateCartItem)
	e.DELETE("/carrinhos/:id", h.Carts.DeleteCartItem)
	e.GET("/carrinhos/:id", h.Carts.GetCartItem)
	e.GET("/carrinhos/cliente/:cliente_id", h.Carts.ListCustomerCart)

	e.GET("/pedidos", h.Orders.ListOrders)
	e.POST("/pedidos", h.Orders.CreateOrder)
	e.GET("/pedidos/:id", h.Orders.GetOrder)
	e.PUT("/pedidos/:id", h.Orders.UpdateOrder)
	e.DELETE("/pedidos/:id", h.Orders.CancelOrder)

	return e
}

func healthHandler(db pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			log.Error().Err(err).Msg("health check failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"status": "erro",
				"erro":   "Erro ao conectar ao banco de dados",
			})
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

func rateLimiterConfig(opts Options) middleware.RateLimiterConfig {
	return middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(opts.RateLimit),
				Burst:     opts.RateBurst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errorJSON(c, http.StatusTooManyRequests, "Limite de requisições excedido")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return errorJSON(c, http.StatusTooManyRequests, "Limite de requisições excedido")
		},
	}
}
