package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
)

func TestValorInventario(t *testing.T) {
	casos := []struct {
		nombre   string
		precio   decimal.Decimal
		stock    int
		esperado string
	}{
		{"precio por stock", decimal.NewFromFloat(10.50), 4, "42"},
		{"precio cero anula", decimal.Zero, 120, "0"},
		{"stock cero anula", decimal.NewFromInt(999), 0, "0"},
		{"precio sin inicializar anula", decimal.Decimal{}, 7, "0"},
		{"centavos exactos", decimal.NewFromFloat(0.01), 3, "0.03"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			valor := entity.ValorInventario(c.precio, c.stock)
			assert.True(t, valor.Equal(decimal.RequireFromString(c.esperado)),
				"ValorInventario(%s, %d) = %s, se esperaba %s", c.precio, c.stock, valor, c.esperado)
		})
	}
}

func TestStockBajo_LaIgualdadCuenta(t *testing.T) {
	casos := []struct {
		stock, minimo int
		esperado      bool
	}{
		{2, 5, true},
		{5, 5, true}, // borde: igual al mínimo es stock bajo
		{6, 5, false},
		{0, 0, true},
		{10, 0, false},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, entity.StockBajo(c.stock, c.minimo),
			"StockBajo(%d, %d)", c.stock, c.minimo)
	}
}

// Los métodos derivan siempre de los campos propios del producto: no hay
// ningún valor almacenado que pueda quedar desincronizado.
func TestProducto_DerivadosCoherentesConSusCampos(t *testing.T) {
	p := entity.Producto{
		Precio:      decimal.NewFromInt(200),
		Stock:       3,
		StockMinimo: 3,
	}

	assert.True(t, p.ValorInventario().Equal(decimal.NewFromInt(600)))
	assert.True(t, p.StockBajo())

	p.Stock = 4
	assert.True(t, p.ValorInventario().Equal(decimal.NewFromInt(800)),
		"cambiar el stock debe reflejarse de inmediato en el valor")
	assert.False(t, p.StockBajo())
}

func TestCatalogos(t *testing.T) {
	assert.True(t, entity.CategoriaValida("Electrónicos"))
	assert.False(t, entity.CategoriaValida("Ferretería"), "fuera del catálogo cerrado")
	assert.False(t, entity.CategoriaValida(""))

	assert.True(t, entity.EstadoValido("Activo"))
	assert.True(t, entity.EstadoValido("Descontinuado"))
	assert.False(t, entity.EstadoValido("Pausado"))

	assert.True(t, entity.EstadoValido(entity.EstadoPorDefecto),
		"el estado por defecto debe pertenecer al catálogo")
}
