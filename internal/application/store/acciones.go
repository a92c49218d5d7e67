package store

import "github.com/jhoicas/inventario-cliente/internal/domain/entity"

// Accion transición nombrada sobre el Estado. El conjunto es cerrado: solo los
// tipos de este archivo implementan la interfaz, así que Reducir puede hacer
// un type switch exhaustivo y una acción desconocida es irrepresentable.
type Accion interface {
	accion()
}

// SetLoading marca el inicio o fin de un ciclo de carga. Al activarse limpia
// el error anterior.
type SetLoading struct {
	Cargando bool
}

// SetProductos reemplaza la colección completa con el resultado de un listado.
type SetProductos struct {
	Productos []entity.Producto
}

// SetProductosStockBajo reemplaza el subconjunto de stock bajo, que es el
// resultado de su propia consulta al servidor (no un filtro local).
type SetProductosStockBajo struct {
	Productos []entity.Producto
}

// AddProducto agrega al final el producto recién creado por el servidor.
type AddProducto struct {
	Producto entity.Producto
}

// UpdateProducto reemplaza por ID el producto actualizado y lo deja
// seleccionado. Si el ID no está en la colección la transición no hace nada:
// un upsert permitiría que una actualización en vuelo resucite un producto
// ya eliminado.
type UpdateProducto struct {
	Producto entity.Producto
}

// DeleteProducto quita de la colección el producto con ese ID.
type DeleteProducto struct {
	ID string
}

// SetError registra el mensaje del último fallo.
type SetError struct {
	Mensaje string
}

// SetAlerta reemplaza la alerta visible.
type SetAlerta struct {
	Alerta Alerta
}

// ClearAlerta quita la alerta visible.
type ClearAlerta struct{}

// SetProductoSeleccionado fija (o limpia, con nil) el producto en detalle.
type SetProductoSeleccionado struct {
	Producto *entity.Producto
}

// SetPaginacion mueve el cursor de página (1-based).
type SetPaginacion struct {
	Pagina int
}

func (SetLoading) accion()              {}
func (SetProductos) accion()            {}
func (SetProductosStockBajo) accion()   {}
func (AddProducto) accion()             {}
func (UpdateProducto) accion()          {}
func (DeleteProducto) accion()          {}
func (SetError) accion()                {}
func (SetAlerta) accion()               {}
func (ClearAlerta) accion()             {}
func (SetProductoSeleccionado) accion() {}
func (SetPaginacion) accion()           {}
