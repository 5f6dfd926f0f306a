package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrBadRequest   = errors.New("petición inválida")
	ErrValidation   = errors.New("error de validación")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Error es un error de negocio con un mensaje apto para el cliente.
// Kind es uno de los sentinelas anteriores; errors.Is(err, Kind) es verdadero.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewNotFound crea un error ErrNotFound con mensaje.
func NewNotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewBadRequest crea un error ErrBadRequest con mensaje.
func NewBadRequest(format string, args ...any) *Error {
	return &Error{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

// ValidationError agrupa errores de forma de la petición por campo (p. ej. "translations[en].name").
type ValidationError struct {
	Message string
	Items   map[string]string
}

// NewValidationError crea un ValidationError vacío con el mensaje general.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Items: map[string]string{}}
}

// Add registra el error de un campo; conserva el primero si se repite.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Items[field]; !ok {
		e.Items[field] = message
	}
}

// HasItems indica si se registró al menos un error de campo.
func (e *ValidationError) HasItems() bool { return len(e.Items) > 0 }

func (e *ValidationError) Error() string {
	if len(e.Items) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Items))
	for k := range e.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Items[k])
	}
	return e.Message + " " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
