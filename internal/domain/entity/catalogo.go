package entity

// Catálogos cerrados compartidos con el backend. La validación del cliente
// rechaza cualquier valor fuera de estas listas, igual que el servidor.

// Categorias categorías disponibles para un producto.
var Categorias = []string{
	"Electrónicos",
	"Ropa",
	"Hogar",
	"Deportes",
	"Libros",
	"Otros",
}

// Estados ciclo de vida de un producto.
var Estados = []string{
	"Activo",
	"Inactivo",
	"Descontinuado",
}

// EstadoPorDefecto estado asignado cuando el formulario no indica uno.
const EstadoPorDefecto = "Activo"

// CategoriaValida verifica pertenencia al catálogo de categorías.
func CategoriaValida(c string) bool {
	return contiene(Categorias, c)
}

// EstadoValido verifica pertenencia al catálogo de estados.
func EstadoValido(e string) bool {
	return contiene(Estados, e)
}

func contiene(lista []string, v string) bool {
	for _, s := range lista {
		if s == v {
			return true
		}
	}
	return false
}
