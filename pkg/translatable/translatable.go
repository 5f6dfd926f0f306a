// Package translatable define contratos genéricos para pares "entidad traducible ↔ traducción"
// (dueño con una colección de textos por locale) y los servicios reutilizables sobre ellos.
//
// Una entidad concreta (p. ej. Category/CategoryTranslation) aporta los argumentos de tipo:
// el tipo de ID, el tipo dueño y el tipo traducción. Los repositorios concretos implementan
// las consultas; los servicios añaden límites transaccionales y semántica de no encontrado.
package translatable

import "context"

// Translation es un registro de texto localizado que pertenece a exactamente un dueño.
// El dueño se referencia por su ID (solo referencia hacia atrás).
type Translation[ID comparable] interface {
	GetID() ID
	GetOwnerID() ID
	GetLocale() string
}

// Translatable es una entidad dueña de una colección de traducciones, ordenada por locale
// ascendente y con a lo sumo una traducción por locale.
type Translatable[ID comparable, TR Translation[ID]] interface {
	GetID() ID
	GetTranslations() []TR
}

// TranslatableRepository es el puerto de persistencia para entidades traducibles.
// Save y los Delete* borran explícitamente las filas de traducción afectadas
// (no depende de cascadas implícitas del motor).
type TranslatableRepository[E Translatable[ID, TR], ID comparable, TR Translation[ID]] interface {
	FindAll(ctx context.Context) ([]E, error)
	// FindByID devuelve ErrNotFound si no existe.
	FindByID(ctx context.Context, id ID) (E, error)
	ExistsByIDAndLocale(ctx context.Context, id ID, locale string) (bool, error)
	// FindByIDAndLocale devuelve ErrNotFound si el dueño no existe o no tiene ese locale.
	FindByIDAndLocale(ctx context.Context, id ID, locale string) (E, error)
	FindAllByLocale(ctx context.Context, locale string) ([]E, error)
	FindAllByLocalePage(ctx context.Context, locale string, page PageRequest) ([]E, int, error)
	FindTranslationsByID(ctx context.Context, id ID) ([]TR, error)
	FindTranslationsByIDPage(ctx context.Context, id ID, page PageRequest) ([]TR, int, error)
	// Save inserta o actualiza el dueño y sincroniza su colección: inserta las nuevas,
	// actualiza las existentes y elimina las que ya no están en la colección.
	Save(ctx context.Context, entity E) error
	Delete(ctx context.Context, id ID) error
	DeleteByLocale(ctx context.Context, locale string) (int, error)
	DeleteByIDAndLocale(ctx context.Context, id ID, locale string) (int, error)
}

// TranslationRepository es el puerto de persistencia para traducciones.
type TranslationRepository[TR Translation[ID], ID comparable] interface {
	ExistsByOwnerID(ctx context.Context, ownerID ID) (bool, error)
	FindByOwnerID(ctx context.Context, ownerID ID) ([]TR, error)
	FindByOwnerIDPage(ctx context.Context, ownerID ID, page PageRequest) ([]TR, int, error)
	ExistsByLocale(ctx context.Context, locale string) (bool, error)
	ExistsByOwnerIDAndLocale(ctx context.Context, ownerID ID, locale string) (bool, error)
	// FindByOwnerIDAndLocale devuelve ErrNotFound si no existe.
	FindByOwnerIDAndLocale(ctx context.Context, ownerID ID, locale string) (TR, error)
	Save(ctx context.Context, translation TR) error
	DeleteByOwnerIDAndLocale(ctx context.Context, ownerID ID, locale string) (int, error)
	DeleteByLocale(ctx context.Context, locale string) (int, error)
}

// NameFinder lo implementan los repositorios cuyas traducciones tienen un campo "name".
type NameFinder[TR any] interface {
	FindByNameAndLocale(ctx context.Context, name, locale string) ([]TR, error)
}

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a ella.
// Hace Commit si fn retorna nil y Rollback en cualquier otro caso.
type TxRunner[R any] interface {
	Run(ctx context.Context, fn func(repos R) error) error
}

// TxFunc adapta una función al contrato TxRunner.
type TxFunc[R any] func(ctx context.Context, fn func(repos R) error) error

// Run implementa TxRunner.
func (f TxFunc[R]) Run(ctx context.Context, fn func(repos R) error) error {
	return f(ctx, fn)
}

// MapTx reduce un TxRunner de varios repositorios a uno solo, reutilizando la misma transacción.
func MapTx[S, R any](runner TxRunner[S], pick func(S) R) TxRunner[R] {
	return TxFunc[R](func(ctx context.Context, fn func(repos R) error) error {
		return runner.Run(ctx, func(s S) error {
			return fn(pick(s))
		})
	})
}
