package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("ya existe un producto con ese nombre")
	ErrCategoriaInvalida = errors.New("categoría fuera del catálogo")
	ErrEstadoInvalido    = errors.New("estado fuera del catálogo")
)
