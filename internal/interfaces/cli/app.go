// Package cli es la capa de presentación: una consola interactiva que consume
// el Store y las operaciones de productos. No contiene lógica de negocio; las
// validaciones y los datos derivados vienen de los paquetes de dominio.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cliente/internal/application/dto"
	"github.com/jhoicas/inventario-cliente/internal/application/productos"
	"github.com/jhoicas/inventario-cliente/internal/application/store"
	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/inventario-cliente/internal/domain/validacion"
)

// App consola interactiva del inventario.
type App struct {
	store *store.Store
	ops   *productos.Operaciones
	in    *bufio.Scanner
	out   io.Writer
}

// NewApp construye la consola sobre los flujos indicados.
func NewApp(s *store.Store, ops *productos.Operaciones, in io.Reader, out io.Writer) *App {
	return &App{store: s, ops: ops, in: bufio.NewScanner(in), out: out}
}

// Run carga la primera página y atiende comandos hasta "salir" o EOF.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Inventario de productos. Escribe 'ayuda' para ver los comandos.")
	a.ops.CargarSiVacio(ctx)
	a.mostrarLista()

	for {
		a.mostrarAlerta()
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return a.in.Err()
		}
		linea := strings.TrimSpace(a.in.Text())
		if linea == "" {
			continue
		}

		partes := strings.Fields(linea)
		comando, args := partes[0], partes[1:]

		switch comando {
		case "salir":
			return nil
		case "ayuda":
			a.mostrarAyuda()
		case "lista":
			a.comandoLista(ctx, args)
		case "buscar":
			a.comandoBuscar(ctx, args)
		case "ver":
			a.comandoVer(ctx, args)
		case "crear":
			a.comandoCrear(ctx)
		case "editar":
			a.comandoEditar(ctx, args)
		case "stock":
			a.comandoStock(ctx, args)
		case "eliminar":
			a.comandoEliminar(ctx, args)
		case "stockbajo":
			a.comandoStockBajo(ctx)
		case "dashboard":
			a.comandoDashboard(ctx)
		case "refrescar":
			if _, err := a.ops.Refrescar(ctx); err == nil {
				a.mostrarLista()
			}
		default:
			fmt.Fprintf(a.out, "Comando desconocido: %s (prueba 'ayuda')\n", comando)
		}
	}
}

func (a *App) mostrarAyuda() {
	fmt.Fprint(a.out, `Comandos:
  lista [página]        listar productos
  buscar <término>      buscar por nombre, descripción o proveedor
  ver <id>              detalle de un producto
  crear                 alta de producto (formulario)
  editar <id>           modificar un producto (formulario)
  stock <id> <n>        ajustar solo el stock
  eliminar <id>         borrar un producto (pide confirmación)
  stockbajo             productos en o bajo su stock mínimo
  dashboard             estadísticas del inventario
  refrescar             recargar la página actual
  salir                 terminar
`)
}

func (a *App) comandoLista(ctx context.Context, args []string) {
	pagina := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(a.out, "La página debe ser un número mayor a 0")
			return
		}
		pagina = n
	}
	if _, err := a.ops.CargarProductos(ctx, pagina); err != nil {
		return
	}
	a.mostrarLista()
}

func (a *App) comandoBuscar(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: buscar <término>")
		return
	}
	if _, err := a.ops.BuscarProductos(ctx, strings.Join(args, " "), ""); err != nil {
		return
	}
	estado := a.store.Estado()
	if len(estado.Productos) == 0 {
		fmt.Fprintln(a.out, "No se encontraron resultados")
		return
	}
	a.mostrarLista()
}

func (a *App) comandoVer(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Uso: ver <id>")
		return
	}
	producto, err := a.ops.ObtenerProducto(ctx, args[0])
	if err != nil {
		return
	}
	a.mostrarDetalle(*producto)
}

func (a *App) comandoCrear(ctx context.Context) {
	borrador, ok := a.formulario(nil)
	if !ok {
		fmt.Fprintln(a.out, "Alta cancelada")
		return
	}
	if _, err := a.ops.CrearProducto(ctx, borrador); err != nil {
		// El formulario queda en manos del usuario; el error ya está en la alerta.
		return
	}
	a.mostrarLista()
}

func (a *App) comandoEditar(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Uso: editar <id>")
		return
	}
	actual, err := a.ops.ObtenerProducto(ctx, args[0])
	if err != nil {
		return
	}
	borrador, ok := a.formulario(actual)
	if !ok {
		fmt.Fprintln(a.out, "Edición cancelada")
		return
	}
	cambios := cambiosDesdeBorrador(borrador)
	if _, err := a.ops.ActualizarProducto(ctx, actual.ID, cambios); err != nil {
		return
	}
	a.mostrarLista()
}

func (a *App) comandoStock(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Uso: stock <id> <cantidad>")
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		fmt.Fprintln(a.out, "El stock debe ser un número igual o mayor a 0")
		return
	}
	if _, err := a.ops.ActualizarStock(ctx, args[0], n); err != nil {
		return
	}
	a.mostrarLista()
}

func (a *App) comandoEliminar(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Uso: eliminar <id>")
		return
	}
	fmt.Fprint(a.out, "¿Estás seguro de que quieres eliminar este producto? (s/N) ")
	if !a.in.Scan() || strings.ToLower(strings.TrimSpace(a.in.Text())) != "s" {
		fmt.Fprintln(a.out, "Eliminación cancelada")
		return
	}
	if err := a.ops.EliminarProducto(ctx, args[0]); err != nil {
		return
	}
	a.mostrarLista()
}

func (a *App) comandoStockBajo(ctx context.Context) {
	productosBajos, err := a.ops.CargarProductosStockBajo(ctx)
	if err != nil {
		return
	}
	if len(productosBajos) == 0 {
		fmt.Fprintln(a.out, "Ningún producto está por debajo de su stock mínimo")
		return
	}
	fmt.Fprintln(a.out, "Productos con stock bajo:")
	a.tabla(productosBajos)
}

func (a *App) comandoDashboard(ctx context.Context) {
	stats, err := a.ops.ObtenerEstadisticas(ctx)
	if err != nil {
		return
	}
	fmt.Fprintf(a.out, "Productos registrados: %d\n", stats.TotalProductos)
	fmt.Fprintf(a.out, "Valor del inventario:  %s\n", FormatearMoneda(stats.ValorInventario))
	fmt.Fprintf(a.out, "Con stock bajo:        %d\n", stats.StockBajo)
	if len(stats.PorCategoria) > 0 {
		fmt.Fprintln(a.out, "Por categoría:")
		for _, categoria := range entity.Categorias {
			if cantidad, ok := stats.PorCategoria[categoria]; ok {
				fmt.Fprintf(a.out, "  %-14s %d\n", categoria, cantidad)
			}
		}
	}
}

// formulario pide campo por campo, validando cada entrada con las mismas
// reglas del motor de validación; reintenta hasta que el valor pase o el
// usuario corte con una línea vacía cuando no hay valor previo. Con un
// producto base (edición) la entrada vacía conserva el valor actual.
func (a *App) formulario(base *entity.Producto) (entity.ProductoBorrador, bool) {
	valores := map[string]string{}
	if base != nil {
		valores = map[string]string{
			"nombre":      base.Nombre,
			"descripcion": base.Descripcion,
			"categoria":   base.Categoria,
			"precio":      base.Precio.String(),
			"stock":       strconv.Itoa(base.Stock),
			"stockMinimo": strconv.Itoa(base.StockMinimo),
			"proveedor":   base.Proveedor,
		}
	}

	etiquetas := map[string]string{
		"nombre":      "Nombre",
		"descripcion": "Descripción",
		"categoria":   "Categoría (" + strings.Join(entity.Categorias, ", ") + ")",
		"precio":      "Precio",
		"stock":       "Stock",
		"stockMinimo": "Stock mínimo",
		"proveedor":   "Proveedor",
	}

	for _, campo := range validacion.CamposRequeridos {
		for {
			actual := valores[campo]
			if actual != "" {
				fmt.Fprintf(a.out, "%s [%s]: ", etiquetas[campo], actual)
			} else {
				fmt.Fprintf(a.out, "%s: ", etiquetas[campo])
			}
			if !a.in.Scan() {
				return entity.ProductoBorrador{}, false
			}
			valor := strings.TrimSpace(a.in.Text())
			if valor == "" {
				if actual != "" {
					valor = actual // conservar el valor vigente en edición
				} else {
					return entity.ProductoBorrador{}, false
				}
			}
			if errores := validacion.ValidarCampo(campo, valor, nil); errores[campo] != "" {
				fmt.Fprintln(a.out, errores[campo])
				continue
			}
			valores[campo] = valor
			break
		}

		// Vista previa del stock bajo con los valores escritos hasta ahora.
		if campo == "stockMinimo" {
			stock, _ := strconv.Atoi(valores["stock"])
			minimo, _ := strconv.Atoi(valores["stockMinimo"])
			if entity.StockBajo(stock, minimo) {
				fmt.Fprintln(a.out, "Atención: el producto quedará marcado con stock bajo")
			}
		}
	}

	return borradorDesdeValores(valores), true
}

func (a *App) mostrarLista() {
	estado := a.store.Estado()
	if len(estado.Productos) == 0 {
		fmt.Fprintln(a.out, "No hay productos registrados")
		return
	}
	a.tabla(estado.Productos)
	fmt.Fprintf(a.out, "Página %d · %d producto(s) en memoria\n", estado.PaginaActual, estado.TotalProductos)
}

func (a *App) tabla(lista []entity.Producto) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORÍA\tPRECIO\tSTOCK\tVALOR\tESTADO")
	for _, p := range lista {
		marca := ""
		if p.StockBajo() {
			marca = " (bajo)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%s\t%s\t%s\n",
			TruncarTexto(p.ID, 8),
			TruncarTexto(p.Nombre, 28),
			p.Categoria,
			FormatearMoneda(p.Precio),
			p.Stock, marca,
			FormatearMoneda(p.ValorInventario()),
			p.Estado,
		)
	}
	w.Flush()
}

func (a *App) mostrarDetalle(p entity.Producto) {
	fmt.Fprintf(a.out, "ID:            %s\n", p.ID)
	fmt.Fprintf(a.out, "Nombre:        %s\n", p.Nombre)
	fmt.Fprintf(a.out, "Descripción:   %s\n", p.Descripcion)
	fmt.Fprintf(a.out, "Categoría:     %s\n", p.Categoria)
	fmt.Fprintf(a.out, "Precio:        %s\n", FormatearMoneda(p.Precio))
	fmt.Fprintf(a.out, "Stock:         %d (mínimo %d)\n", p.Stock, p.StockMinimo)
	fmt.Fprintf(a.out, "Valor:         %s\n", FormatearMoneda(p.ValorInventario()))
	fmt.Fprintf(a.out, "Proveedor:     %s\n", p.Proveedor)
	fmt.Fprintf(a.out, "Estado:        %s\n", p.Estado)
	fmt.Fprintf(a.out, "Creado:        %s\n", FormatearFechaHora(p.FechaCreacion))
	if p.StockBajo() {
		fmt.Fprintln(a.out, "Este producto está en o por debajo de su stock mínimo")
	}
}

func (a *App) mostrarAlerta() {
	estado := a.store.Estado()
	if estado.Alerta == nil {
		return
	}
	fmt.Fprintf(a.out, "[%s] %s\n", strings.ToUpper(string(estado.Alerta.Severidad)), estado.Alerta.Mensaje)
	a.store.LimpiarAlerta() // en consola la alerta se consume al mostrarse
}

func borradorDesdeValores(valores map[string]string) entity.ProductoBorrador {
	// Los valores ya pasaron la validación campo a campo; las conversiones no
	// pueden fallar.
	precio, _ := decimal.NewFromString(valores["precio"])
	stock, _ := strconv.Atoi(valores["stock"])
	minimo, _ := strconv.Atoi(valores["stockMinimo"])
	return entity.ProductoBorrador{
		Nombre:      valores["nombre"],
		Descripcion: valores["descripcion"],
		Categoria:   valores["categoria"],
		Precio:      precio,
		Stock:       stock,
		StockMinimo: minimo,
		Proveedor:   valores["proveedor"],
		Estado:      entity.EstadoPorDefecto,
	}
}

func cambiosDesdeBorrador(b entity.ProductoBorrador) dto.CambiosProducto {
	return dto.CambiosProducto{
		Nombre:      &b.Nombre,
		Descripcion: &b.Descripcion,
		Categoria:   &b.Categoria,
		Precio:      &b.Precio,
		Stock:       &b.Stock,
		StockMinimo: &b.StockMinimo,
		Proveedor:   &b.Proveedor,
	}
}
