// Package validacion implementa las reglas de validación por campo del
// formulario de producto. Las funciones son puras: reciben el valor crudo tal
// como lo escribió el usuario y devuelven un mapa de errores nuevo; quién y
// cuándo muestra los mensajes es responsabilidad del llamador.
package validacion

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cliente/internal/domain/entity"
)

// Longitudes mínimas por campo (deben coincidir con las del backend).
const (
	NombreMinLen      = 2
	DescripcionMinLen = 10
	ProveedorMinLen   = 2
)

// Errores mapa campo -> mensaje. Un campo válido no aparece en el mapa, de modo
// que "sin errores" es literalmente un mapa vacío.
type Errores map[string]string

// CamposRequeridos campos que ValidarFormulario evalúa siempre.
var CamposRequeridos = []string{
	"nombre",
	"descripcion",
	"categoria",
	"precio",
	"stock",
	"stockMinimo",
	"proveedor",
}

// ValidarCampo evalúa un campo de forma aislada y devuelve una copia del mapa
// con la entrada del campo actualizada: puesta si falla, eliminada si pasa.
// Un campo desconocido se ignora y el mapa queda igual.
func ValidarCampo(campo, valor string, errores Errores) Errores {
	nuevos := clonar(errores)

	switch campo {
	case "nombre":
		v := strings.TrimSpace(valor)
		switch {
		case v == "":
			nuevos[campo] = "El nombre es requerido"
		case utf8.RuneCountInString(v) < NombreMinLen:
			nuevos[campo] = "El nombre debe tener al menos 2 caracteres"
		default:
			delete(nuevos, campo)
		}

	case "descripcion":
		v := strings.TrimSpace(valor)
		switch {
		case v == "":
			nuevos[campo] = "La descripción es requerida"
		case utf8.RuneCountInString(v) < DescripcionMinLen:
			nuevos[campo] = "La descripción debe tener al menos 10 caracteres"
		default:
			delete(nuevos, campo)
		}

	case "categoria":
		switch {
		case valor == "":
			nuevos[campo] = "La categoría es requerida"
		case !entity.CategoriaValida(valor):
			nuevos[campo] = "La categoría no está en el catálogo"
		default:
			delete(nuevos, campo)
		}

	case "precio":
		precio, err := decimal.NewFromString(strings.TrimSpace(valor))
		if valor == "" || err != nil || !precio.IsPositive() {
			nuevos[campo] = "El precio debe ser un número mayor a 0"
		} else {
			delete(nuevos, campo)
		}

	case "stock":
		n, err := strconv.Atoi(strings.TrimSpace(valor))
		if valor == "" || err != nil || n < 0 {
			nuevos[campo] = "El stock debe ser un número igual o mayor a 0"
		} else {
			delete(nuevos, campo)
		}

	case "stockMinimo":
		n, err := strconv.Atoi(strings.TrimSpace(valor))
		if valor == "" || err != nil || n < 0 {
			nuevos[campo] = "El stock mínimo debe ser un número igual o mayor a 0"
		} else {
			delete(nuevos, campo)
		}

	case "proveedor":
		v := strings.TrimSpace(valor)
		switch {
		case v == "":
			nuevos[campo] = "El proveedor es requerido"
		case utf8.RuneCountInString(v) < ProveedorMinLen:
			nuevos[campo] = "El proveedor debe tener al menos 2 caracteres"
		default:
			delete(nuevos, campo)
		}
	}

	return nuevos
}

// ValidarFormulario pasa todos los campos requeridos por ValidarCampo y
// devuelve si el formulario completo es válido junto con el mapa de errores.
func ValidarFormulario(valores map[string]string) (bool, Errores) {
	errores := Errores{}
	for _, campo := range CamposRequeridos {
		errores = ValidarCampo(campo, valores[campo], errores)
	}
	return len(errores) == 0, errores
}

func clonar(e Errores) Errores {
	nuevos := make(Errores, len(e))
	for k, v := range e {
		nuevos[k] = v
	}
	return nuevos
}
