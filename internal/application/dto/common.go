package dto

import "github.com/jhoicas/translatable-api/pkg/translatable"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto y topes.
func (p *PageRequest) DefaultPage() {
	n := p.ToPage().Normalize()
	p.Limit, p.Offset = n.Limit, n.Offset
}

// ToPage convierte a la petición de página de la capa genérica.
func (p PageRequest) ToPage() translatable.PageRequest {
	return translatable.PageRequest{Limit: p.Limit, Offset: p.Offset}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// NewPageResponse copia los metadatos de una página genérica.
func NewPageResponse[T any](p translatable.Page[T]) PageResponse {
	return PageResponse{Limit: p.Limit, Offset: p.Offset, Total: p.Total}
}

// ErrorResponse cuerpo de error HTTP. Items solo se informa en errores de validación (campo -> mensaje).
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Items   map[string]string `json:"items,omitempty"`
}

// DeletedResponse cantidad de registros eliminados en borrados masivos.
type DeletedResponse struct {
	Deleted int `json:"deleted"`
}
