// Package stubserver implementa un backend local de productos con el mismo
// contrato REST que el servidor real. Sirve para desarrollo sin backend y
// como servidor de los tests de integración del Gateway.
package stubserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New arma la aplicación Fiber con todas las rutas del contrato.
func New(repo *Repositorio) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "inventario-stub",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	h := NewProductoHandler(repo)

	api := app.Group("/api")
	// Las rutas fijas van antes que /:id para que no las capture el parámetro.
	api.Get("/productos/buscar", h.Buscar)
	api.Get("/productos/stock-bajo", h.StockBajo)
	api.Get("/productos/estadisticas", h.Estadisticas)
	api.Get("/productos", h.Listar)
	api.Post("/productos", h.Crear)
	api.Get("/productos/:id", h.Obtener)
	api.Put("/productos/:id", h.Actualizar)
	api.Delete("/productos/:id", h.Eliminar)

	return app
}

// NewRepositorioDeEjemplo crea el almacén sembrado con el catálogo de
// ejemplo, para arrancar el stub con datos visibles.
func NewRepositorioDeEjemplo() *Repositorio {
	repo := NewRepositorio()
	for _, b := range borradoresDeEjemplo {
		if _, err := repo.Crear(b); err != nil {
			panic("stubserver: semilla inválida: " + err.Error())
		}
	}
	return repo
}
