package store

import (
	"sync"
	"time"

	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
)

// DuracionAlerta ventana de visibilidad de una alerta antes de limpiarse sola.
const DuracionAlerta = 5 * time.Second

// Reducir aplica una transición y devuelve el estado resultante. Es una
// función pura: no toca red, reloj ni estado ambiental. El switch cubre todas
// las acciones del conjunto cerrado; un tipo nuevo sin rama revienta aquí en
// lugar de degradar en silencio.
func Reducir(e Estado, a Accion) Estado {
	switch a := a.(type) {
	case SetLoading:
		e.Loading = a.Cargando
		e.Error = ""

	case SetProductos:
		productos := a.Productos
		if productos == nil {
			productos = []entity.Producto{}
		}
		e.Productos = productos
		e.TotalProductos = len(productos)
		e.Loading = false
		e.Error = ""

	case SetProductosStockBajo:
		productos := a.Productos
		if productos == nil {
			productos = []entity.Producto{}
		}
		e.ProductosStockBajo = productos
		e.Loading = false
		e.Error = ""

	case AddProducto:
		e.Productos = append(clonarProductos(e.Productos), a.Producto)
		e.TotalProductos++
		e.Loading = false

	case UpdateProducto:
		productos := clonarProductos(e.Productos)
		for i := range productos {
			if productos[i].ID == a.Producto.ID {
				productos[i] = a.Producto
			}
		}
		e.Productos = productos
		seleccionado := a.Producto
		e.ProductoSeleccionado = &seleccionado
		e.Loading = false

	case DeleteProducto:
		productos := make([]entity.Producto, 0, len(e.Productos))
		for _, p := range e.Productos {
			if p.ID != a.ID {
				productos = append(productos, p)
			}
		}
		e.Productos = productos
		e.TotalProductos--
		e.Loading = false

	case SetError:
		e.Error = a.Mensaje
		e.Loading = false

	case SetAlerta:
		alerta := a.Alerta
		e.Alerta = &alerta

	case ClearAlerta:
		e.Alerta = nil

	case SetProductoSeleccionado:
		e.ProductoSeleccionado = a.Producto

	case SetPaginacion:
		e.PaginaActual = a.Pagina

	default:
		panic("store: acción fuera del conjunto cerrado")
	}

	return e
}

// Store contenedor único del estado más su punto de despacho. Se construye
// explícitamente una vez por sesión y se pasa por referencia a cada
// consumidor; no hay singleton ambiental. Las transiciones se serializan con
// un mutex, así que ninguna puede observarse a medio aplicar y el orden de
// aplicación es el orden de despacho.
type Store struct {
	mu     sync.Mutex
	estado Estado

	// Temporizador de limpieza de la alerta vigente. Mostrar una alerta nueva
	// detiene el anterior, y la secuencia evita que un disparo tardío limpie
	// una alerta posterior.
	alertaSeq      uint64
	alertaTimer    *time.Timer
	duracionAlerta time.Duration

	suscriptores []func(Estado)
}

// New crea el Store con el estado inicial de sesión.
func New() *Store {
	return &Store{estado: EstadoInicial(), duracionAlerta: DuracionAlerta}
}

// Despachar aplica la acción y notifica a los suscriptores con el estado
// resultante. Seguro para llamar desde cualquier goroutine.
func (s *Store) Despachar(a Accion) {
	s.mu.Lock()
	s.estado = Reducir(s.estado, a)
	estado := s.estado
	suscriptores := s.suscriptores
	s.mu.Unlock()

	for _, fn := range suscriptores {
		fn(estado)
	}
}

// Estado devuelve la instantánea vigente.
func (s *Store) Estado() Estado {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estado
}

// Suscribir registra un callback invocado tras cada transición con el estado
// resultante. Pensado para redibujar la interfaz; registrar antes de despachar.
func (s *Store) Suscribir(fn func(Estado)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suscriptores = append(s.suscriptores, fn)
}

// MostrarAlerta publica una alerta y programa su limpieza tras DuracionAlerta.
// Una alerta nueva cancela la limpieza pendiente de la anterior, de modo que
// cada alerta dispone de su ventana completa.
func (s *Store) MostrarAlerta(mensaje string, severidad Severidad) {
	s.mu.Lock()
	if s.alertaTimer != nil {
		s.alertaTimer.Stop()
	}
	s.alertaSeq++
	seq := s.alertaSeq
	s.alertaTimer = time.AfterFunc(s.duracionAlerta, func() {
		s.limpiarAlertaSiVigente(seq)
	})
	s.mu.Unlock()

	s.Despachar(SetAlerta{Alerta: Alerta{Mensaje: mensaje, Severidad: severidad}})
}

// FijarDuracionAlerta cambia la ventana de visibilidad de las alertas.
// La aplicación usa DuracionAlerta; los tests la acortan.
func (s *Store) FijarDuracionAlerta(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.duracionAlerta = d
}

// LimpiarAlerta quita la alerta visible de forma inmediata (cierre manual).
func (s *Store) LimpiarAlerta() {
	s.mu.Lock()
	if s.alertaTimer != nil {
		s.alertaTimer.Stop()
		s.alertaTimer = nil
	}
	s.alertaSeq++
	s.mu.Unlock()

	s.Despachar(ClearAlerta{})
}

// limpiarAlertaSiVigente limpia solo si ninguna alerta más nueva tomó la
// ventana. Stop no garantiza ganarle a un timer ya disparado; la secuencia sí.
func (s *Store) limpiarAlertaSiVigente(seq uint64) {
	s.mu.Lock()
	vigente := seq == s.alertaSeq
	s.mu.Unlock()

	if vigente {
		s.Despachar(ClearAlerta{})
	}
}

// clonarProductos copia el slice para que Reducir nunca mute el estado previo
// que un suscriptor pudiera estar leyendo.
func clonarProductos(productos []entity.Producto) []entity.Producto {
	copia := make([]entity.Producto, len(productos))
	copy(copia, productos)
	return copia
}
