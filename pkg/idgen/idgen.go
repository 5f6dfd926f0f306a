// Package idgen genera identificadores únicos para entidades y traducciones.
package idgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const (
	StrategyULID   = "ulid"
	StrategyUUIDv7 = "uuidv7"
)

// Generator produce IDs nuevos como texto.
type Generator interface {
	NewID() string
}

// Func adapta una función al contrato Generator (útil en tests).
type Func func() string

// NewID implementa Generator.
func (f Func) NewID() string { return f() }

// ULID genera ULIDs (26 caracteres, ordenables por tiempo).
type ULID struct{}

// NewID implementa Generator.
func (ULID) NewID() string { return ulid.Make().String() }

// UUIDv7 genera UUID versión 7 (ordenables por tiempo).
type UUIDv7 struct{}

// NewID implementa Generator.
func (UUIDv7) NewID() string { return uuid.Must(uuid.NewV7()).String() }

// New devuelve el generador para la estrategia indicada ("ulid" por defecto).
func New(strategy string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyULID:
		return ULID{}, nil
	case StrategyUUIDv7:
		return UUIDv7{}, nil
	default:
		return nil, fmt.Errorf("idgen: estrategia desconocida %q", strategy)
	}
}

// Sequence devuelve un generador determinista "<prefix>-1", "<prefix>-2", ... para tests.
func Sequence(prefix string) Generator {
	n := 0
	return Func(func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	})
}
