package stubserver

import (
	"errors"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-cliente/internal/application/dto"
	"github.com/jhoicas/inventario-cliente/internal/domain"
	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/inventario-cliente/internal/domain/validacion"
)

// ProductoHandler maneja las rutas /productos del backend de pruebas.
// Responde siempre con el sobre {data, total, page, pages, count} que el
// Gateway del cliente espera, y los errores como {message} con estado 4xx/5xx.
type ProductoHandler struct {
	repo *Repositorio
}

// NewProductoHandler construye el handler.
func NewProductoHandler(repo *Repositorio) *ProductoHandler {
	return &ProductoHandler{repo: repo}
}

// Listar GET /productos?page&limit&categoria
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	pagina := c.QueryInt("page", 1)
	limite := c.QueryInt("limit", 10)
	productos, total := h.repo.Listar(pagina, limite, c.Query("categoria"))
	return c.JSON(sobreDeLista(productos, total, pagina, limite))
}

// Buscar GET /productos/buscar?q&page&limit&categoria
func (h *ProductoHandler) Buscar(c *fiber.Ctx) error {
	pagina := c.QueryInt("page", 1)
	limite := c.QueryInt("limit", 10)
	productos, total := h.repo.Buscar(c.Query("q"), c.Query("categoria"), pagina, limite)
	return c.JSON(sobreDeLista(productos, total, pagina, limite))
}

// StockBajo GET /productos/stock-bajo
func (h *ProductoHandler) StockBajo(c *fiber.Ctx) error {
	productos := h.repo.StockBajo()
	return c.JSON(sobreDeLista(productos, len(productos), 1, len(productos)+1))
}

// Estadisticas GET /productos/estadisticas
func (h *ProductoHandler) Estadisticas(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.repo.Estadisticas()})
}

// Obtener GET /productos/:id
func (h *ProductoHandler) Obtener(c *fiber.Ctx) error {
	producto, err := h.repo.Obtener(c.Params("id"))
	if err != nil {
		return respuestaDeError(c, err)
	}
	return c.JSON(fiber.Map{"data": producto})
}

// Crear POST /productos
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var borrador entity.ProductoBorrador
	if err := c.BodyParser(&borrador); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cuerpo inválido"})
	}
	if mensaje := validarBorrador(borrador); mensaje != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": mensaje})
	}
	producto, err := h.repo.Crear(borrador)
	if err != nil {
		return respuestaDeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": producto})
}

// Actualizar PUT /productos/:id
func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	var cambios dto.CambiosProducto
	if err := c.BodyParser(&cambios); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cuerpo inválido"})
	}
	producto, err := h.repo.Actualizar(c.Params("id"), cambios)
	if err != nil {
		return respuestaDeError(c, err)
	}
	return c.JSON(fiber.Map{"data": producto})
}

// Eliminar DELETE /productos/:id
func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.repo.Eliminar(c.Params("id")); err != nil {
		return respuestaDeError(c, err)
	}
	return c.JSON(fiber.Map{})
}

// validarBorrador reglas mínimas del servidor; espejo de las del formulario.
func validarBorrador(b entity.ProductoBorrador) string {
	switch {
	case utf8.RuneCountInString(b.Nombre) < validacion.NombreMinLen:
		return "El nombre debe tener al menos 2 caracteres"
	case utf8.RuneCountInString(b.Descripcion) < validacion.DescripcionMinLen:
		return "La descripción debe tener al menos 10 caracteres"
	case !b.Precio.IsPositive():
		return "El precio debe ser un número mayor a 0"
	case b.Stock < 0 || b.StockMinimo < 0:
		return "El stock debe ser un número igual o mayor a 0"
	case utf8.RuneCountInString(b.Proveedor) < validacion.ProveedorMinLen:
		return "El proveedor debe tener al menos 2 caracteres"
	}
	return ""
}

func respuestaDeError(c *fiber.Ctx, err error) error {
	estado := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		estado = fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate):
		estado = fiber.StatusConflict
	case errors.Is(err, domain.ErrCategoriaInvalida), errors.Is(err, domain.ErrEstadoInvalido):
		estado = fiber.StatusBadRequest
	}
	return c.Status(estado).JSON(fiber.Map{"message": err.Error()})
}

func sobreDeLista(productos []entity.Producto, total, pagina, limite int) fiber.Map {
	paginas := 1
	if limite > 0 && total > 0 {
		paginas = (total + limite - 1) / limite
	}
	return fiber.Map{
		"data":  productos,
		"total": total,
		"page":  pagina,
		"pages": paginas,
		"count": len(productos),
	}
}
