package dto

import (
	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
)

// ListaProductos resultado paginado de listar o buscar productos, ya
// desenvuelto del sobre {data, total, page, pages, count} del backend.
type ListaProductos struct {
	Productos    []entity.Producto
	Total        int
	Pagina       int
	TotalPaginas int
	Count        int
}
