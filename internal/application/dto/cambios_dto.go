package dto

import "github.com/shopspring/decimal"

// CambiosProducto parche parcial para PUT /productos/:id. Los campos nil no
// viajan en el cuerpo y el servidor conserva el valor vigente.
type CambiosProducto struct {
	Nombre      *string          `json:"nombre,omitempty"`
	Descripcion *string          `json:"descripcion,omitempty"`
	Categoria   *string          `json:"categoria,omitempty"`
	Precio      *decimal.Decimal `json:"precio,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	StockMinimo *int             `json:"stockMinimo,omitempty"`
	Proveedor   *string          `json:"proveedor,omitempty"`
	Estado      *string          `json:"estado,omitempty"`
}
