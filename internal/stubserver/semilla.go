package stubserver

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
)

// borradoresDeEjemplo catálogo pequeño con al menos un producto por debajo de
// su mínimo, para que las vistas de stock bajo y dashboard muestren algo.
var borradoresDeEjemplo = []entity.ProductoBorrador{
	{
		Nombre:      "Notebook 14 pulgadas",
		Descripcion: "Notebook liviana para oficina, 16 GB de RAM",
		Categoria:   "Electrónicos",
		Precio:      decimal.NewFromInt(850000),
		Stock:       8,
		StockMinimo: 3,
		Proveedor:   "TecnoSur",
	},
	{
		Nombre:      "Auriculares inalámbricos",
		Descripcion: "Auriculares bluetooth con cancelación de ruido",
		Categoria:   "Electrónicos",
		Precio:      decimal.NewFromInt(120000),
		Stock:       2,
		StockMinimo: 5,
		Proveedor:   "TecnoSur",
	},
	{
		Nombre:      "Campera de abrigo",
		Descripcion: "Campera impermeable para invierno, talles S a XXL",
		Categoria:   "Ropa",
		Precio:      decimal.NewFromInt(95000),
		Stock:       15,
		StockMinimo: 4,
		Proveedor:   "Textil Norte",
	},
	{
		Nombre:      "Juego de sábanas",
		Descripcion: "Juego de sábanas de algodón para cama de dos plazas",
		Categoria:   "Hogar",
		Precio:      decimal.NewFromInt(48000),
		Stock:       4,
		StockMinimo: 4,
		Proveedor:   "Casa Bella",
	},
	{
		Nombre:      "Pelota de fútbol",
		Descripcion: "Pelota de fútbol número 5, cosida a máquina",
		Categoria:   "Deportes",
		Precio:      decimal.NewFromInt(30000),
		Stock:       20,
		StockMinimo: 6,
		Proveedor:   "Deportes Lito",
	},
}
