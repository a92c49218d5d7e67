package store

import "github.com/jhoicas/inventario-cliente/internal/domain/entity"

// Severidad de una alerta transitoria.
type Severidad string

const (
	SeveridadSuccess Severidad = "success"
	SeveridadError   Severidad = "error"
	SeveridadWarning Severidad = "warning"
	SeveridadInfo    Severidad = "info"
)

// Alerta mensaje transitorio para el usuario. Se limpia sola tras DuracionAlerta.
type Alerta struct {
	Mensaje   string
	Severidad Severidad
}

// Estado instantánea completa del inventario en memoria. Es un espejo del
// estado del servidor: la única fuente de verdad sigue siendo el backend y
// este estado se refresca con cada operación.
type Estado struct {
	Productos            []entity.Producto
	ProductosStockBajo   []entity.Producto
	TotalProductos       int // invariante: == len(Productos) tras cada transición
	PaginaActual         int // 1-based
	ProductoSeleccionado *entity.Producto
	Loading              bool
	Error                string
	Alerta               *Alerta
}

// EstadoInicial estado de una sesión recién abierta.
func EstadoInicial() Estado {
	return Estado{
		Productos:          []entity.Producto{},
		ProductosStockBajo: []entity.Producto{},
		PaginaActual:       1,
	}
}
