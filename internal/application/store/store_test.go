package store_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cliente/internal/application/store"
	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func producto(id string, stock, minimo int) entity.Producto {
	return entity.Producto{
		ID:          id,
		Nombre:      "Producto " + id,
		Precio:      decimal.NewFromInt(100),
		Stock:       stock,
		StockMinimo: minimo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reducir: transiciones puras
// ──────────────────────────────────────────────────────────────────────────────

func TestReducir_SetProductos_MantieneInvarianteDeTotal(t *testing.T) {
	e := store.EstadoInicial()

	// Cualquier secuencia de SetProductos deja TotalProductos == len(Productos).
	secuencias := [][]entity.Producto{
		{producto("a", 1, 0), producto("b", 2, 0)},
		{},
		{producto("c", 3, 0)},
		nil, // carga inválida: se trata como colección vacía
	}
	for _, productos := range secuencias {
		e = store.Reducir(e, store.SetProductos{Productos: productos})
		require.Equal(t, len(e.Productos), e.TotalProductos,
			"TotalProductos debe igualar len(Productos) tras cada SetProductos")
	}

	assert.NotNil(t, e.Productos, "un payload nil debe quedar como colección vacía, no nil")
	assert.False(t, e.Loading, "SetProductos termina el ciclo de carga")
	assert.Empty(t, e.Error, "SetProductos limpia el error")
}

func TestReducir_AddYDelete_SonInversos(t *testing.T) {
	e := store.Reducir(store.EstadoInicial(), store.SetProductos{
		Productos: []entity.Producto{producto("a", 5, 2)},
	})
	antes := e

	e = store.Reducir(e, store.AddProducto{Producto: producto("x", 1, 1)})
	require.Len(t, e.Productos, 2)
	require.Equal(t, 2, e.TotalProductos)

	e = store.Reducir(e, store.DeleteProducto{ID: "x"})
	assert.Equal(t, antes.Productos, e.Productos,
		"agregar y borrar el mismo ID debe devolver la colección original")
	assert.Equal(t, antes.TotalProductos, e.TotalProductos)
}

func TestReducir_Update_ReemplazaYSelecciona(t *testing.T) {
	e := store.Reducir(store.EstadoInicial(), store.SetProductos{
		Productos: []entity.Producto{producto("a", 5, 2), producto("b", 1, 1)},
	})

	actualizado := producto("a", 9, 2)
	actualizado.Nombre = "Renombrado"
	e = store.Reducir(e, store.UpdateProducto{Producto: actualizado})

	require.Len(t, e.Productos, 2)
	assert.Equal(t, "Renombrado", e.Productos[0].Nombre)
	assert.Equal(t, 9, e.Productos[0].Stock)
	require.NotNil(t, e.ProductoSeleccionado, "el producto actualizado queda seleccionado")
	assert.Equal(t, "a", e.ProductoSeleccionado.ID)
}

// Un update con ID desconocido es un no-op deliberado: un upsert permitiría
// que una actualización en vuelo resucite un producto ya eliminado.
func TestReducir_UpdateConIDDesconocido_NoInserta(t *testing.T) {
	e := store.Reducir(store.EstadoInicial(), store.SetProductos{
		Productos: []entity.Producto{producto("a", 5, 2)},
	})

	e2 := store.Reducir(e, store.UpdateProducto{Producto: producto("fantasma", 1, 1)})

	assert.Equal(t, e.Productos, e2.Productos, "la colección no debe cambiar")
	assert.Equal(t, e.TotalProductos, e2.TotalProductos)
}

func TestReducir_SetLoading_LimpiaError(t *testing.T) {
	e := store.Reducir(store.EstadoInicial(), store.SetError{Mensaje: "algo falló"})
	require.Equal(t, "algo falló", e.Error)
	require.False(t, e.Loading, "SetError termina el ciclo de carga")

	e = store.Reducir(e, store.SetLoading{Cargando: true})
	assert.True(t, e.Loading)
	assert.Empty(t, e.Error, "un ciclo de carga nuevo arranca sin error")
}

func TestReducir_DerivadosSobreLaColeccion(t *testing.T) {
	// Escenario del listado de stock bajo derivado en pantalla: 'a' está bajo
	// su mínimo, 'b' no.
	e := store.Reducir(store.EstadoInicial(), store.SetProductos{
		Productos: []entity.Producto{producto("a", 2, 5), producto("b", 10, 5)},
	})

	assert.True(t, e.Productos[0].StockBajo(), "stock 2 <= mínimo 5")
	assert.False(t, e.Productos[1].StockBajo(), "stock 10 > mínimo 5")
}

func TestReducir_NoMutaElEstadoAnterior(t *testing.T) {
	original := store.Reducir(store.EstadoInicial(), store.SetProductos{
		Productos: []entity.Producto{producto("a", 5, 2)},
	})
	copia := original.Productos[0]

	actualizado := producto("a", 0, 2)
	_ = store.Reducir(original, store.UpdateProducto{Producto: actualizado})
	_ = store.Reducir(original, store.AddProducto{Producto: producto("b", 1, 1)})

	assert.Equal(t, copia, original.Productos[0],
		"Reducir debe operar sobre copias, nunca mutar el slice del estado previo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Store: despacho serializado y suscriptores
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_DespachosConcurrentes_MantienenInvariante(t *testing.T) {
	s := store.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Despachar(store.AddProducto{Producto: producto(fmt.Sprintf("p%d", i), 1, 0)})
		}(i)
	}
	wg.Wait()

	e := s.Estado()
	assert.Equal(t, 50, e.TotalProductos)
	assert.Len(t, e.Productos, 50)
}

func TestStore_Suscriptor_RecibeCadaTransicion(t *testing.T) {
	s := store.New()

	var estados []store.Estado
	s.Suscribir(func(e store.Estado) { estados = append(estados, e) })

	s.Despachar(store.SetLoading{Cargando: true})
	s.Despachar(store.SetProductos{Productos: []entity.Producto{producto("a", 1, 0)}})

	require.Len(t, estados, 2)
	assert.True(t, estados[0].Loading)
	assert.Equal(t, 1, estados[1].TotalProductos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_Alerta_SeLimpiaSola(t *testing.T) {
	s := store.New()
	s.FijarDuracionAlerta(30 * time.Millisecond)

	s.MostrarAlerta("ok", store.SeveridadSuccess)
	require.NotNil(t, s.Estado().Alerta)

	assert.Eventually(t, func() bool { return s.Estado().Alerta == nil },
		time.Second, 5*time.Millisecond, "la alerta debe expirar sola")
}

// La segunda alerta cancela el temporizador de la primera: pasado el plazo
// original de la primera, la segunda sigue visible y recién expira al cumplir
// su propia ventana completa.
func TestStore_AlertaNueva_CancelaLaLimpiezaAnterior(t *testing.T) {
	s := store.New()
	s.FijarDuracionAlerta(80 * time.Millisecond)

	s.MostrarAlerta("primera", store.SeveridadSuccess)
	time.Sleep(50 * time.Millisecond)
	s.MostrarAlerta("segunda", store.SeveridadError)

	// Ya venció el plazo de la primera; la segunda debe seguir en pantalla.
	time.Sleep(50 * time.Millisecond)
	alerta := s.Estado().Alerta
	require.NotNil(t, alerta, "el timer de la primera no debe limpiar a la segunda")
	assert.Equal(t, "segunda", alerta.Mensaje)
	assert.Equal(t, store.SeveridadError, alerta.Severidad)

	assert.Eventually(t, func() bool { return s.Estado().Alerta == nil },
		time.Second, 5*time.Millisecond, "la segunda expira al cumplir su propia ventana")
}

func TestStore_LimpiarAlerta_EsInmediato(t *testing.T) {
	s := store.New()
	s.FijarDuracionAlerta(time.Hour) // el timer no debe intervenir

	s.MostrarAlerta("visible", store.SeveridadInfo)
	require.NotNil(t, s.Estado().Alerta)

	s.LimpiarAlerta()
	assert.Nil(t, s.Estado().Alerta)
}
