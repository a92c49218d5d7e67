package api_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cliente/internal/application/dto"
	"github.com/jhoicas/inventario-cliente/internal/domain"
	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/inventario-cliente/internal/infrastructure/api"
	"github.com/jhoicas/inventario-cliente/internal/stubserver"
	"github.com/jhoicas/inventario-cliente/pkg/config"
	"github.com/jhoicas/inventario-cliente/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de integración del Gateway contra el backend de pruebas real (Fiber)
// escuchando en un puerto efímero de loopback.
// ──────────────────────────────────────────────────────────────────────────────

func arrancarStub(t *testing.T, repo *stubserver.Repositorio) *api.Cliente {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "debe poder abrirse un puerto efímero")

	app := stubserver.New(repo)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return api.NewCliente(config.APIConfig{
		BaseURL: "http://" + ln.Addr().String() + "/api",
		Timeout: 5 * time.Second,
	}, logger.Nop())
}

func borrador(nombre string, stock, minimo int) entity.ProductoBorrador {
	return entity.ProductoBorrador{
		Nombre:      nombre,
		Descripcion: "Descripción de prueba con largo suficiente",
		Categoria:   "Electrónicos",
		Precio:      decimal.NewFromInt(1500),
		Stock:       stock,
		StockMinimo: minimo,
		Proveedor:   "Proveedor SA",
	}
}

func TestGateway_CicloCompletoDeProducto(t *testing.T) {
	cliente := arrancarStub(t, stubserver.NewRepositorio())
	ctx := context.Background()

	// Crear: el servidor asigna ID y fecha.
	creado, err := cliente.CrearProducto(ctx, borrador("Monitor 27", 10, 2))
	require.NoError(t, err)
	assert.NotEmpty(t, creado.ID, "el ID lo asigna el servidor")
	assert.False(t, creado.FechaCreacion.IsZero(), "la fecha la asigna el servidor")
	assert.Equal(t, "Activo", creado.Estado, "estado por defecto")

	// Obtener por ID.
	obtenido, err := cliente.ObtenerProducto(ctx, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, creado.ID, obtenido.ID)
	assert.True(t, obtenido.Precio.Equal(decimal.NewFromInt(1500)))

	// Actualizar: parche parcial, el resto queda igual.
	nuevoStock := 1
	actualizado, err := cliente.ActualizarProducto(ctx, creado.ID, dto.CambiosProducto{Stock: &nuevoStock})
	require.NoError(t, err)
	assert.Equal(t, 1, actualizado.Stock)
	assert.Equal(t, "Monitor 27", actualizado.Nombre, "los campos sin parche se conservan")

	// Ahora está bajo el mínimo: debe aparecer en stock-bajo.
	bajos, err := cliente.ObtenerProductosStockBajo(ctx)
	require.NoError(t, err)
	require.Len(t, bajos, 1)
	assert.Equal(t, creado.ID, bajos[0].ID)

	// Eliminar y verificar el 404 posterior.
	require.NoError(t, cliente.EliminarProducto(ctx, creado.ID))
	_, err = cliente.ObtenerProducto(ctx, creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGateway_ListarPagina(t *testing.T) {
	repo := stubserver.NewRepositorio()
	cliente := arrancarStub(t, repo)
	ctx := context.Background()

	for _, nombre := range []string{"Alfa", "Beta", "Gamma", "Delta", "Épsilon"} {
		_, err := repo.Crear(borrador(nombre, 5, 1))
		require.NoError(t, err)
	}

	pagina, err := cliente.ListarProductos(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, pagina.Total)
	assert.Equal(t, 2, pagina.Pagina)
	assert.Equal(t, 3, pagina.TotalPaginas)
	assert.Equal(t, 2, pagina.Count)
	require.Len(t, pagina.Productos, 2)
	assert.Equal(t, "Gamma", pagina.Productos[0].Nombre, "el orden del servidor se respeta")

	// Página más allá del final: resultado vacío, no error.
	vacia, err := cliente.ListarProductos(ctx, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, vacia.Productos)
}

func TestGateway_Buscar(t *testing.T) {
	repo := stubserver.NewRepositorio()
	cliente := arrancarStub(t, repo)
	ctx := context.Background()

	_, err := repo.Crear(borrador("Teclado mecánico", 5, 1))
	require.NoError(t, err)
	ropa := borrador("Remera técnica", 5, 1)
	ropa.Categoria = "Ropa"
	_, err = repo.Crear(ropa)
	require.NoError(t, err)

	resultado, err := cliente.BuscarProductos(ctx, "teclado", "", 1, 10)
	require.NoError(t, err)
	require.Len(t, resultado.Productos, 1)
	assert.Equal(t, "Teclado mecánico", resultado.Productos[0].Nombre)

	// Sin término y con categoría: filtro del listado general.
	porCategoria, err := cliente.BuscarProductos(ctx, "", "Ropa", 1, 10)
	require.NoError(t, err)
	require.Len(t, porCategoria.Productos, 1)
	assert.Equal(t, "Remera técnica", porCategoria.Productos[0].Nombre)

	sinResultados, err := cliente.BuscarProductos(ctx, "inexistente", "", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, sinResultados.Productos, "sin coincidencias es resultado vacío, no error")
}

func TestGateway_Estadisticas_CoincidenConElCalculoDerivado(t *testing.T) {
	repo := stubserver.NewRepositorio()
	cliente := arrancarStub(t, repo)

	a, err := repo.Crear(borrador("Uno", 4, 1))
	require.NoError(t, err)
	b, err := repo.Crear(borrador("Dos", 1, 3))
	require.NoError(t, err)

	stats, err := cliente.ObtenerEstadisticas(context.Background())
	require.NoError(t, err)

	esperado := entity.ValorInventario(a.Precio, a.Stock).Add(entity.ValorInventario(b.Precio, b.Stock))
	assert.Equal(t, 2, stats.TotalProductos)
	assert.True(t, stats.ValorInventario.Equal(esperado),
		"cliente y servidor usan el mismo cálculo de valor de inventario")
	assert.Equal(t, 1, stats.StockBajo)
	assert.Equal(t, 2, stats.PorCategoria["Electrónicos"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestGateway_ErrorDelServidor_ConservaElMensaje(t *testing.T) {
	repo := stubserver.NewRepositorio()
	cliente := arrancarStub(t, repo)
	ctx := context.Background()

	_, err := repo.Crear(borrador("Repetido", 5, 1))
	require.NoError(t, err)

	_, err = cliente.CrearProducto(ctx, borrador("Repetido", 5, 1))
	var srv *api.ServerError
	require.ErrorAs(t, err, &srv, "un 409 debe llegar como ServerError")
	assert.Equal(t, 409, srv.Status)
	assert.Equal(t, "ya existe un producto con ese nombre", srv.Mensaje,
		"el mensaje del servidor se conserva tal cual")
}

func TestGateway_ValidacionDelServidor_Llega400(t *testing.T) {
	cliente := arrancarStub(t, stubserver.NewRepositorio())

	invalido := borrador("Sin precio", 5, 1)
	invalido.Precio = decimal.Zero
	_, err := cliente.CrearProducto(context.Background(), invalido)

	var srv *api.ServerError
	require.ErrorAs(t, err, &srv)
	assert.Equal(t, 400, srv.Status)
	assert.Equal(t, "El precio debe ser un número mayor a 0", srv.Mensaje)
}

func TestGateway_ActualizarInexistente_Es404(t *testing.T) {
	cliente := arrancarStub(t, stubserver.NewRepositorio())

	nombre := "Nuevo nombre"
	_, err := cliente.ActualizarProducto(context.Background(), "no-existe", dto.CambiosProducto{Nombre: &nombre})

	var srv *api.ServerError
	require.ErrorAs(t, err, &srv)
	assert.Equal(t, 404, srv.Status)
}

func TestGateway_SinServidor_EsErrorDeConexion(t *testing.T) {
	// Puerto reservado y cerrado de inmediato: nadie escucha ahí.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	direccion := ln.Addr().String()
	require.NoError(t, ln.Close())

	cliente := api.NewCliente(config.APIConfig{
		BaseURL: "http://" + direccion + "/api",
		Timeout: time.Second,
	}, logger.Nop())

	_, err = cliente.ListarProductos(context.Background(), 1, 10)
	assert.ErrorIs(t, err, api.ErrConexion, "sin respuesta la red se normaliza a un único mensaje")
}

func TestGateway_ContextCancelado_NoSeQuedaEsperando(t *testing.T) {
	cliente := arrancarStub(t, stubserver.NewRepositorio())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cliente.ListarProductos(ctx, 1, 10)
	assert.ErrorIs(t, err, api.ErrConexion,
		"una petición cancelada también se normaliza: no hubo respuesta")
}
