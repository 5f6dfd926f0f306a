package translatable

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest paginación por limit/offset.
type PageRequest struct {
	Limit  int
	Offset int
}

// Normalize aplica los valores por defecto y los topes.
func (p PageRequest) Normalize() PageRequest {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Page es una página de resultados con el total de elementos que cumplen el filtro.
type Page[T any] struct {
	Items  []T
	Total  int
	Limit  int
	Offset int
}

// NewPage arma una página a partir de los elementos, el total y la petición normalizada.
func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Limit: req.Limit, Offset: req.Offset}
}

// HasNext indica si quedan elementos después de esta página.
func (p Page[T]) HasNext() bool {
	return p.Offset+len(p.Items) < p.Total
}

// MapPage transforma los elementos de una página conservando sus metadatos.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Page[U]{Items: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}
}
