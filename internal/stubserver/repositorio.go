package stubserver

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-cliente/internal/application/dto"
	"github.com/jhoicas/inventario-cliente/internal/domain"
	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
)

// Repositorio almacén en memoria del backend de pruebas. Conserva el orden de
// inserción, que es el orden que el cliente debe respetar al listar.
type Repositorio struct {
	mu        sync.RWMutex
	productos []entity.Producto
}

// NewRepositorio crea el almacén, opcionalmente sembrado.
func NewRepositorio(semilla ...entity.Producto) *Repositorio {
	r := &Repositorio{productos: []entity.Producto{}}
	r.productos = append(r.productos, semilla...)
	return r
}

// Crear asigna ID y fecha de creación, valida catálogos y rechaza nombres
// duplicados (mismo comportamiento que el backend real).
func (r *Repositorio) Crear(b entity.ProductoBorrador) (entity.Producto, error) {
	if b.Estado == "" {
		b.Estado = entity.EstadoPorDefecto
	}
	if !entity.CategoriaValida(b.Categoria) {
		return entity.Producto{}, domain.ErrCategoriaInvalida
	}
	if !entity.EstadoValido(b.Estado) {
		return entity.Producto{}, domain.ErrEstadoInvalido
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.productos {
		if strings.EqualFold(p.Nombre, b.Nombre) {
			return entity.Producto{}, domain.ErrDuplicate
		}
	}

	producto := entity.Producto{
		ID:            uuid.New().String(),
		Nombre:        b.Nombre,
		Descripcion:   b.Descripcion,
		Categoria:     b.Categoria,
		Precio:        b.Precio,
		Stock:         b.Stock,
		StockMinimo:   b.StockMinimo,
		Proveedor:     b.Proveedor,
		Estado:        b.Estado,
		FechaCreacion: time.Now().UTC(),
	}
	r.productos = append(r.productos, producto)
	return producto, nil
}

// Obtener busca por ID.
func (r *Repositorio) Obtener(id string) (entity.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.productos {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Producto{}, domain.ErrNotFound
}

// Actualizar aplica un parche parcial y devuelve el producto resultante.
func (r *Repositorio) Actualizar(id string, cambios dto.CambiosProducto) (entity.Producto, error) {
	if cambios.Categoria != nil && !entity.CategoriaValida(*cambios.Categoria) {
		return entity.Producto{}, domain.ErrCategoriaInvalida
	}
	if cambios.Estado != nil && !entity.EstadoValido(*cambios.Estado) {
		return entity.Producto{}, domain.ErrEstadoInvalido
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.productos {
		if r.productos[i].ID != id {
			continue
		}
		p := &r.productos[i]
		if cambios.Nombre != nil {
			p.Nombre = *cambios.Nombre
		}
		if cambios.Descripcion != nil {
			p.Descripcion = *cambios.Descripcion
		}
		if cambios.Categoria != nil {
			p.Categoria = *cambios.Categoria
		}
		if cambios.Precio != nil {
			p.Precio = *cambios.Precio
		}
		if cambios.Stock != nil {
			p.Stock = *cambios.Stock
		}
		if cambios.StockMinimo != nil {
			p.StockMinimo = *cambios.StockMinimo
		}
		if cambios.Proveedor != nil {
			p.Proveedor = *cambios.Proveedor
		}
		if cambios.Estado != nil {
			p.Estado = *cambios.Estado
		}
		return *p, nil
	}
	return entity.Producto{}, domain.ErrNotFound
}

// Eliminar borra por ID.
func (r *Repositorio) Eliminar(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.productos {
		if p.ID == id {
			r.productos = append(r.productos[:i], r.productos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Listar pagina el catálogo, opcionalmente filtrado por categoría.
func (r *Repositorio) Listar(pagina, limite int, categoria string) ([]entity.Producto, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtrados := r.filtrar(func(p entity.Producto) bool {
		return categoria == "" || p.Categoria == categoria
	})
	return paginar(filtrados, pagina, limite), len(filtrados)
}

// Buscar filtra por término en nombre, descripción o proveedor (sin distinguir
// mayúsculas), opcionalmente acotado por categoría.
func (r *Repositorio) Buscar(termino, categoria string, pagina, limite int) ([]entity.Producto, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := strings.ToLower(termino)
	filtrados := r.filtrar(func(p entity.Producto) bool {
		if categoria != "" && p.Categoria != categoria {
			return false
		}
		return strings.Contains(strings.ToLower(p.Nombre), t) ||
			strings.Contains(strings.ToLower(p.Descripcion), t) ||
			strings.Contains(strings.ToLower(p.Proveedor), t)
	})
	return paginar(filtrados, pagina, limite), len(filtrados)
}

// StockBajo devuelve los productos en o por debajo de su mínimo, usando el
// mismo cálculo derivado que el cliente.
func (r *Repositorio) StockBajo() []entity.Producto {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filtrar(entity.Producto.StockBajo)
}

// Estadisticas calcula los agregados del dashboard.
func (r *Repositorio) Estadisticas() dto.Estadisticas {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := dto.Estadisticas{
		TotalProductos: len(r.productos),
		PorCategoria:   map[string]int{},
	}
	for _, p := range r.productos {
		stats.ValorInventario = stats.ValorInventario.Add(p.ValorInventario())
		stats.PorCategoria[p.Categoria]++
		if p.StockBajo() {
			stats.StockBajo++
		}
	}
	return stats
}

func (r *Repositorio) filtrar(pred func(entity.Producto) bool) []entity.Producto {
	filtrados := []entity.Producto{}
	for _, p := range r.productos {
		if pred(p) {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados
}

func paginar(productos []entity.Producto, pagina, limite int) []entity.Producto {
	if pagina < 1 {
		pagina = 1
	}
	inicio := (pagina - 1) * limite
	if inicio >= len(productos) {
		return []entity.Producto{}
	}
	fin := inicio + limite
	if fin > len(productos) {
		fin = len(productos)
	}
	return productos[inicio:fin]
}
