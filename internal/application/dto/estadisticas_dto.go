package dto

import "github.com/shopspring/decimal"

// Estadisticas agregados del inventario para el dashboard, calculados por el
// backend en GET /productos/estadisticas.
type Estadisticas struct {
	TotalProductos  int             `json:"totalProductos"`
	ValorInventario decimal.Decimal `json:"valorInventario"`
	StockBajo       int             `json:"stockBajo"`
	PorCategoria    map[string]int  `json:"porCategoria"`
}
