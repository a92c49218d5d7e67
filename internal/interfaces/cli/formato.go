package cli

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Utilidades de presentación: moneda, fechas y texto. Solo formato, sin lógica
// de dominio.

// FormatearMoneda presenta un monto en pesos sin decimales, con separador de
// miles: $ 1.250.000.
func FormatearMoneda(valor decimal.Decimal) string {
	entero := valor.Round(0).IntPart()

	negativo := entero < 0
	if negativo {
		entero = -entero
	}

	digitos := []byte(decimal.NewFromInt(entero).String())
	var b strings.Builder
	for i, d := range digitos {
		if i > 0 && (len(digitos)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(d)
	}

	if negativo {
		return "-$ " + b.String()
	}
	return "$ " + b.String()
}

// FormatearFecha fecha corta, o N/A si no viene.
func FormatearFecha(fecha time.Time) string {
	if fecha.IsZero() {
		return "N/A"
	}
	return fecha.Local().Format("02/01/2006")
}

// FormatearFechaHora fecha con hora, o N/A si no viene.
func FormatearFechaHora(fecha time.Time) string {
	if fecha.IsZero() {
		return "N/A"
	}
	return fecha.Local().Format("02/01/2006 15:04")
}

// TruncarTexto corta en longitud máxima agregando "..." si hizo falta.
func TruncarTexto(texto string, longitud int) string {
	runas := []rune(texto)
	if len(runas) <= longitud {
		return texto
	}
	return string(runas[:longitud]) + "..."
}

// Capitalizar primera letra en mayúscula, el resto en minúscula.
func Capitalizar(s string) string {
	if s == "" {
		return ""
	}
	runas := []rune(strings.ToLower(s))
	runas[0] = []rune(strings.ToUpper(string(runas[0])))[0]
	return string(runas)
}
