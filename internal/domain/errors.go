package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	// ErrPersistence indica que el estado quedó solo en memoria (fallo del almacenamiento durable).
	ErrPersistence = errors.New("fallo de persistencia")
)
