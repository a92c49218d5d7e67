package cli

import (
	"sync"
	"time"
)

// Debouncer difiere la ejecución de una función hasta que pase una ventana de
// silencio: cada llamada nueva cancela la anterior todavía pendiente. Se usa
// para no lanzar una búsqueda por cada tecla.
type Debouncer struct {
	mu     sync.Mutex
	espera time.Duration
	timer  *time.Timer
}

// NewDebouncer crea un debouncer con la ventana indicada.
func NewDebouncer(espera time.Duration) *Debouncer {
	return &Debouncer{espera: espera}
}

// Ejecutar programa fn tras la ventana de espera, cancelando cualquier
// ejecución pendiente de una llamada anterior.
func (d *Debouncer) Ejecutar(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.espera, fn)
}

// Cancelar descarta la ejecución pendiente, si la hay.
func (d *Debouncer) Cancelar() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
