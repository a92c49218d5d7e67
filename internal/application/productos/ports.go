package productos

import (
	"context"

	"github.com/jhoicas/inventario-cliente/internal/application/dto"
	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
)

// Gateway puerto hacia el backend REST de productos. La implementación
// normaliza todo fallo (transporte, timeout o error reportado por el
// servidor) a un error con mensaje presentable; nunca reintenta.
type Gateway interface {
	ListarProductos(ctx context.Context, pagina, limite int) (*dto.ListaProductos, error)
	ObtenerProducto(ctx context.Context, id string) (*entity.Producto, error)
	BuscarProductos(ctx context.Context, termino, categoria string, pagina, limite int) (*dto.ListaProductos, error)
	CrearProducto(ctx context.Context, borrador entity.ProductoBorrador) (*entity.Producto, error)
	ActualizarProducto(ctx context.Context, id string, cambios dto.CambiosProducto) (*entity.Producto, error)
	EliminarProducto(ctx context.Context, id string) error
	ObtenerProductosStockBajo(ctx context.Context) ([]entity.Producto, error)
	ObtenerEstadisticas(ctx context.Context) (*dto.Estadisticas, error)
}
