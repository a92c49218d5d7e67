// Package api implementa el Gateway de productos sobre el backend REST.
// Todas las respuestas llegan en un sobre {data: ...} (los listados suman
// total/page/pages/count); la ausencia de data se trata como resultado vacío,
// no como error. Los fallos se normalizan a la taxonomía de errores.go y
// nunca se reintentan aquí: la política de reintento, si existe, es del
// llamador.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/inventario-cliente/internal/application/dto"
	"github.com/jhoicas/inventario-cliente/internal/application/productos"
	"github.com/jhoicas/inventario-cliente/internal/domain"
	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/inventario-cliente/pkg/config"
	"github.com/jhoicas/inventario-cliente/pkg/logger"
)

// Verificar en tiempo de compilación que Cliente implementa el puerto.
var _ productos.Gateway = (*Cliente)(nil)

// Cliente gateway HTTP hacia el backend de productos.
type Cliente struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewCliente construye el gateway. El timeout de cfg (10 s por defecto) acota
// cada ida y vuelta; un context más corto del llamador también se respeta.
func NewCliente(cfg config.APIConfig, log *logger.Logger) *Cliente {
	return &Cliente{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// ── Sobres del protocolo ──────────────────────────────────────────────────────

type sobreLista struct {
	Data  []entity.Producto `json:"data"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Pages int               `json:"pages"`
	Count int               `json:"count"`
}

type sobreProducto struct {
	Data *entity.Producto `json:"data"`
}

type sobreEstadisticas struct {
	Data *dto.Estadisticas `json:"data"`
}

type sobreError struct {
	Message string `json:"message"`
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// ListarProductos trae una página del listado.
func (c *Cliente) ListarProductos(ctx context.Context, pagina, limite int) (*dto.ListaProductos, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(pagina))
	q.Set("limit", strconv.Itoa(limite))

	var sobre sobreLista
	if err := c.hacer(ctx, http.MethodGet, "/productos", q, nil, &sobre); err != nil {
		return nil, err
	}
	return listaDesdeSobre(sobre), nil
}

// ObtenerProducto trae un producto por ID. Devuelve domain.ErrNotFound si el
// servidor responde 404.
func (c *Cliente) ObtenerProducto(ctx context.Context, id string) (*entity.Producto, error) {
	var sobre sobreProducto
	if err := c.hacer(ctx, http.MethodGet, "/productos/"+url.PathEscape(id), nil, nil, &sobre); err != nil {
		var srv *ServerError
		if errors.As(err, &srv) && srv.Status == http.StatusNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if sobre.Data == nil {
		return nil, domain.ErrNotFound
	}
	return sobre.Data, nil
}

// BuscarProductos busca por término y opcionalmente filtra por categoría.
// Con término vacío y categoría presente usa el filtro del listado general.
func (c *Cliente) BuscarProductos(ctx context.Context, termino, categoria string, pagina, limite int) (*dto.ListaProductos, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(pagina))
	q.Set("limit", strconv.Itoa(limite))

	ruta := "/productos/buscar"
	if termino == "" && categoria != "" {
		ruta = "/productos"
		q.Set("categoria", categoria)
	} else {
		q.Set("q", termino)
		if categoria != "" {
			q.Set("categoria", categoria)
		}
	}

	var sobre sobreLista
	if err := c.hacer(ctx, http.MethodGet, ruta, q, nil, &sobre); err != nil {
		return nil, err
	}
	return listaDesdeSobre(sobre), nil
}

// CrearProducto registra el borrador; el servidor asigna ID y fechaCreacion.
func (c *Cliente) CrearProducto(ctx context.Context, borrador entity.ProductoBorrador) (*entity.Producto, error) {
	var sobre sobreProducto
	if err := c.hacer(ctx, http.MethodPost, "/productos", nil, borrador, &sobre); err != nil {
		return nil, err
	}
	return productoDesdeSobre(sobre), nil
}

// ActualizarProducto aplica un parche parcial.
func (c *Cliente) ActualizarProducto(ctx context.Context, id string, cambios dto.CambiosProducto) (*entity.Producto, error) {
	var sobre sobreProducto
	if err := c.hacer(ctx, http.MethodPut, "/productos/"+url.PathEscape(id), nil, cambios, &sobre); err != nil {
		return nil, err
	}
	return productoDesdeSobre(sobre), nil
}

// EliminarProducto borra por ID. El éxito lo señala el estado HTTP; el cuerpo
// se ignora.
func (c *Cliente) EliminarProducto(ctx context.Context, id string) error {
	return c.hacer(ctx, http.MethodDelete, "/productos/"+url.PathEscape(id), nil, nil, nil)
}

// ObtenerProductosStockBajo trae el subconjunto con stock en o bajo el mínimo.
func (c *Cliente) ObtenerProductosStockBajo(ctx context.Context) ([]entity.Producto, error) {
	var sobre sobreLista
	if err := c.hacer(ctx, http.MethodGet, "/productos/stock-bajo", nil, nil, &sobre); err != nil {
		return nil, err
	}
	return listaDesdeSobre(sobre).Productos, nil
}

// ObtenerEstadisticas trae los agregados del dashboard.
func (c *Cliente) ObtenerEstadisticas(ctx context.Context) (*dto.Estadisticas, error) {
	var sobre sobreEstadisticas
	if err := c.hacer(ctx, http.MethodGet, "/productos/estadisticas", nil, nil, &sobre); err != nil {
		return nil, err
	}
	if sobre.Data == nil {
		return &dto.Estadisticas{}, nil
	}
	return sobre.Data, nil
}

// ── Transporte ────────────────────────────────────────────────────────────────

// hacer ejecuta una petición y decodifica el sobre en out (nil descarta el
// cuerpo). Normaliza los tres orígenes de fallo: construcción de la petición,
// red sin respuesta y respuesta no-2xx del servidor.
func (c *Cliente) hacer(ctx context.Context, metodo, ruta string, query url.Values, cuerpo, out any) error {
	destino := c.baseURL + ruta
	if len(query) > 0 {
		destino += "?" + query.Encode()
	}

	var lector io.Reader
	if cuerpo != nil {
		datos, err := json.Marshal(cuerpo)
		if err != nil {
			c.log.Error().Err(err).Str("ruta", ruta).Msg("no se pudo serializar el cuerpo")
			return ErrSolicitud
		}
		lector = bytes.NewReader(datos)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, destino, lector)
	if err != nil {
		c.log.Error().Err(err).Str("ruta", ruta).Msg("no se pudo construir la petición")
		return ErrSolicitud
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("metodo", metodo).Str("ruta", ruta).Msg("sin respuesta del servidor")
		return ErrConexion
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorDeServidor(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error().Err(err).Str("ruta", ruta).Msg("respuesta ilegible del servidor")
		return ErrSolicitud
	}
	return nil
}

// errorDeServidor arma un *ServerError con el mensaje del cuerpo o, si no
// viene, uno generado a partir del estado.
func (c *Cliente) errorDeServidor(resp *http.Response) error {
	mensaje := fmt.Sprintf("Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))

	var sobre sobreError
	if err := json.NewDecoder(resp.Body).Decode(&sobre); err == nil && sobre.Message != "" {
		mensaje = sobre.Message
	}

	c.log.Warn().Int("status", resp.StatusCode).Str("mensaje", mensaje).Msg("error del servidor")
	return &ServerError{Status: resp.StatusCode, Mensaje: mensaje}
}

func listaDesdeSobre(s sobreLista) *dto.ListaProductos {
	productos := s.Data
	if productos == nil {
		productos = []entity.Producto{}
	}
	pagina := s.Page
	if pagina == 0 {
		pagina = 1
	}
	return &dto.ListaProductos{
		Productos:    productos,
		Total:        s.Total,
		Pagina:       pagina,
		TotalPaginas: s.Pages,
		Count:        s.Count,
	}
}

// productoDesdeSobre: un sobre 2xx sin data cuenta como resultado vacío, no
// como error; se materializa como producto cero para que nadie desreferencie
// nil.
func productoDesdeSobre(s sobreProducto) *entity.Producto {
	if s.Data == nil {
		return &entity.Producto{}
	}
	return s.Data
}
