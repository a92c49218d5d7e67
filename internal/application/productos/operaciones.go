// Package productos orquesta las operaciones de cara al usuario: cada una
// marca el ciclo de carga, llama al Gateway y despacha el resultado al Store,
// traduciendo los fallos en alertas transitorias. Los errores siempre se
// devuelven al llamador además de registrarse, para que la acción de origen
// (por ejemplo un formulario) pueda reaccionar localmente.
package productos

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/inventario-cliente/internal/application/dto"
	"github.com/jhoicas/inventario-cliente/internal/application/store"
	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/inventario-cliente/pkg/logger"
)

// Operaciones casos de uso del inventario sobre un Store y un Gateway
// inyectados. Una instancia por sesión, igual que el Store.
type Operaciones struct {
	store  *store.Store
	gw     Gateway
	log    *logger.Logger
	limite int // tamaño de página por defecto

	// Generaciones por familia de lectura: si mientras una llamada estaba en
	// vuelo arrancó otra de la misma familia, el resultado viejo se descarta
	// en lugar de despacharse.
	genListado   atomic.Uint64
	genStockBajo atomic.Uint64
	genDetalle   atomic.Uint64

	// Carga automática de la primera pantalla: a lo sumo una vez por sesión.
	autoCargar sync.Once
}

// NewOperaciones construye las operaciones.
func NewOperaciones(s *store.Store, gw Gateway, log *logger.Logger, itemsPorPagina int) *Operaciones {
	return &Operaciones{store: s, gw: gw, log: log, limite: itemsPorPagina}
}

// CargarProductos trae una página del listado y reemplaza la colección.
// PaginaActual solo avanza si la carga tuvo éxito.
func (o *Operaciones) CargarProductos(ctx context.Context, pagina int) (*dto.ListaProductos, error) {
	gen := o.genListado.Add(1)

	o.store.Despachar(store.SetLoading{Cargando: true})
	lista, err := o.gw.ListarProductos(ctx, pagina, o.limite)
	if gen != o.genListado.Load() {
		o.log.Debug().Int("pagina", pagina).Msg("listado superado por otra carga, resultado descartado")
		return lista, err
	}
	if err != nil {
		return nil, o.fallo(err)
	}

	o.store.Despachar(store.SetProductos{Productos: lista.Productos})
	o.store.Despachar(store.SetPaginacion{Pagina: pagina})
	return lista, nil
}

// CargarProductosStockBajo trae el subconjunto con stock bajo, que es su
// propia consulta al servidor.
func (o *Operaciones) CargarProductosStockBajo(ctx context.Context) ([]entity.Producto, error) {
	gen := o.genStockBajo.Add(1)

	o.store.Despachar(store.SetLoading{Cargando: true})
	productos, err := o.gw.ObtenerProductosStockBajo(ctx)
	if gen != o.genStockBajo.Load() {
		o.log.Debug().Msg("consulta de stock bajo superada, resultado descartado")
		return productos, err
	}
	if err != nil {
		return nil, o.fallo(err)
	}

	o.store.Despachar(store.SetProductosStockBajo{Productos: productos})
	return productos, nil
}

// ObtenerProducto carga un producto y lo deja seleccionado.
func (o *Operaciones) ObtenerProducto(ctx context.Context, id string) (*entity.Producto, error) {
	gen := o.genDetalle.Add(1)

	o.store.Despachar(store.SetLoading{Cargando: true})
	producto, err := o.gw.ObtenerProducto(ctx, id)
	if gen != o.genDetalle.Load() {
		o.log.Debug().Str("id", id).Msg("detalle superado por otra carga, resultado descartado")
		return producto, err
	}
	if err != nil {
		return nil, o.fallo(err)
	}

	o.store.Despachar(store.SetProductoSeleccionado{Producto: producto})
	o.store.Despachar(store.SetLoading{Cargando: false})
	return producto, nil
}

// CrearProducto registra un borrador ya validado; el servidor asigna ID y
// fecha. Ante fallo la colección queda intacta y el error se propaga para que
// el formulario conserve lo escrito.
func (o *Operaciones) CrearProducto(ctx context.Context, borrador entity.ProductoBorrador) (*entity.Producto, error) {
	o.store.Despachar(store.SetLoading{Cargando: true})
	producto, err := o.gw.CrearProducto(ctx, borrador)
	if err != nil {
		return nil, o.fallo(err)
	}

	o.store.Despachar(store.AddProducto{Producto: *producto})
	o.store.MostrarAlerta(fmt.Sprintf("Producto %q creado exitosamente", producto.Nombre), store.SeveridadSuccess)
	return producto, nil
}

// ActualizarProducto aplica un parche parcial y deja seleccionado el producto
// que devolvió el servidor.
func (o *Operaciones) ActualizarProducto(ctx context.Context, id string, cambios dto.CambiosProducto) (*entity.Producto, error) {
	o.store.Despachar(store.SetLoading{Cargando: true})
	producto, err := o.gw.ActualizarProducto(ctx, id, cambios)
	if err != nil {
		return nil, o.fallo(err)
	}

	o.store.Despachar(store.UpdateProducto{Producto: *producto})
	o.store.MostrarAlerta(fmt.Sprintf("Producto %q actualizado exitosamente", producto.Nombre), store.SeveridadSuccess)
	return producto, nil
}

// ActualizarStock parche de solo stock, para el ajuste rápido desde la lista.
func (o *Operaciones) ActualizarStock(ctx context.Context, id string, nuevoStock int) (*entity.Producto, error) {
	o.store.Despachar(store.SetLoading{Cargando: true})
	producto, err := o.gw.ActualizarProducto(ctx, id, dto.CambiosProducto{Stock: &nuevoStock})
	if err != nil {
		return nil, o.fallo(err)
	}

	o.store.Despachar(store.UpdateProducto{Producto: *producto})
	o.store.MostrarAlerta("Stock actualizado exitosamente", store.SeveridadSuccess)
	return producto, nil
}

// EliminarProducto borra en el servidor y quita el producto de la colección.
func (o *Operaciones) EliminarProducto(ctx context.Context, id string) error {
	o.store.Despachar(store.SetLoading{Cargando: true})
	if err := o.gw.EliminarProducto(ctx, id); err != nil {
		return o.fallo(err)
	}

	o.store.Despachar(store.DeleteProducto{ID: id})
	o.store.MostrarAlerta("Producto eliminado exitosamente", store.SeveridadSuccess)
	return nil
}

// BuscarProductos reemplaza la colección con el resultado de la búsqueda.
// No mueve el cursor de página del listado.
func (o *Operaciones) BuscarProductos(ctx context.Context, termino, categoria string) (*dto.ListaProductos, error) {
	gen := o.genListado.Add(1)

	o.store.Despachar(store.SetLoading{Cargando: true})
	lista, err := o.gw.BuscarProductos(ctx, termino, categoria, 1, o.limite)
	if gen != o.genListado.Load() {
		o.log.Debug().Str("termino", termino).Msg("búsqueda superada, resultado descartado")
		return lista, err
	}
	if err != nil {
		return nil, o.fallo(err)
	}

	o.store.Despachar(store.SetProductos{Productos: lista.Productos})
	return lista, nil
}

// ObtenerEstadisticas trae los agregados del dashboard. No toca la colección.
func (o *Operaciones) ObtenerEstadisticas(ctx context.Context) (*dto.Estadisticas, error) {
	o.store.Despachar(store.SetLoading{Cargando: true})
	stats, err := o.gw.ObtenerEstadisticas(ctx)
	if err != nil {
		return nil, o.fallo(err)
	}

	o.store.Despachar(store.SetLoading{Cargando: false})
	return stats, nil
}

// Refrescar reemite la carga del listado en la página vigente.
func (o *Operaciones) Refrescar(ctx context.Context) (*dto.ListaProductos, error) {
	return o.CargarProductos(ctx, o.store.Estado().PaginaActual)
}

// CargarSiVacio dispara la carga inicial si la colección está vacía, a lo
// sumo una vez por sesión: volver a dibujar la pantalla no la repite.
func (o *Operaciones) CargarSiVacio(ctx context.Context) {
	if len(o.store.Estado().Productos) > 0 {
		return
	}
	o.autoCargar.Do(func() {
		if _, err := o.CargarProductos(ctx, 1); err != nil {
			o.log.Warn().Err(err).Msg("carga inicial de productos falló")
		}
	})
}

// fallo registra el error en el Store, lo muestra como alerta y lo devuelve
// sin tragarlo.
func (o *Operaciones) fallo(err error) error {
	o.store.Despachar(store.SetError{Mensaje: err.Error()})
	o.store.MostrarAlerta(err.Error(), store.SeveridadError)
	return err
}
