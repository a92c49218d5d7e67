package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del inventario tal como lo entrega el backend.
// El ID y FechaCreacion los asigna el servidor; el cliente nunca los genera.
type Producto struct {
	ID            string          `json:"_id"`
	Nombre        string          `json:"nombre"`
	Descripcion   string          `json:"descripcion"`
	Categoria     string          `json:"categoria"`
	Precio        decimal.Decimal `json:"precio"`
	Stock         int             `json:"stock"`
	StockMinimo   int             `json:"stockMinimo"`
	Proveedor     string          `json:"proveedor"`
	Estado        string          `json:"estado"`
	FechaCreacion time.Time       `json:"fechaCreacion"`
}

// ProductoBorrador datos de un producto aún sin persistir (sin ID ni fecha).
type ProductoBorrador struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	StockMinimo int             `json:"stockMinimo"`
	Proveedor   string          `json:"proveedor"`
	Estado      string          `json:"estado"`
}

// ValorInventario calcula precio × stock. Un stock negativo o un precio sin
// inicializar (zero value) producen los resultados aritméticos directos; nunca
// hay NaN porque decimal no lo representa.
func ValorInventario(precio decimal.Decimal, stock int) decimal.Decimal {
	return precio.Mul(decimal.NewFromInt(int64(stock)))
}

// StockBajo indica si el stock actual está en o por debajo del mínimo
// configurado. La igualdad cuenta como stock bajo.
func StockBajo(stock, stockMinimo int) bool {
	return stock <= stockMinimo
}

// ValorInventario del producto, derivado siempre de sus propios campos.
func (p Producto) ValorInventario() decimal.Decimal {
	return ValorInventario(p.Precio, p.Stock)
}

// StockBajo del producto, derivado siempre de sus propios campos.
func (p Producto) StockBajo() bool {
	return StockBajo(p.Stock, p.StockMinimo)
}
