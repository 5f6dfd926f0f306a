package translatable

import "errors"

// Errores del paquete; los adaptadores los envuelven con contexto usando %w.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupported     = errors.New("operation not supported")
)
