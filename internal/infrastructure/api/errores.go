package api

import "errors"

// Mensajes fijos de la taxonomía de fallos del Gateway. Todo fallo llega al
// resto de la aplicación como uno de estos tres casos o como *ServerError.
var (
	// ErrConexion la petición salió pero no hubo respuesta (red o timeout).
	ErrConexion = errors.New("Error de conexión. Verifica que el servidor esté funcionando.")
	// ErrSolicitud la petición ni siquiera pudo construirse o enviarse.
	ErrSolicitud = errors.New("Error al procesar la solicitud")
)

// ServerError el backend respondió con un estado no-2xx.
type ServerError struct {
	Status  int
	Mensaje string // mensaje del servidor, o "Error <status>: <statusText>" generado
}

func (e *ServerError) Error() string {
	return e.Mensaje
}
