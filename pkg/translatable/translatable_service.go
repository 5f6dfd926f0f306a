package translatable

import (
	"context"
	"fmt"
)

// TranslatableService operaciones reutilizables sobre entidades traducibles.
// Las lecturas van contra repo; las escrituras abren una transacción con tx.
type TranslatableService[E Translatable[ID, TR], ID comparable, TR Translation[ID]] struct {
	repo TranslatableRepository[E, ID, TR]
	tx   TxRunner[TranslatableRepository[E, ID, TR]]
}

// NewTranslatableService construye el servicio.
func NewTranslatableService[E Translatable[ID, TR], ID comparable, TR Translation[ID]](
	repo TranslatableRepository[E, ID, TR],
	tx TxRunner[TranslatableRepository[E, ID, TR]],
) *TranslatableService[E, ID, TR] {
	return &TranslatableService[E, ID, TR]{repo: repo, tx: tx}
}

// ExistsByIDAndLocale indica si la entidad existe y tiene una traducción en el locale.
func (s *TranslatableService[E, ID, TR]) ExistsByIDAndLocale(ctx context.Context, id ID, locale string) (bool, error) {
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return false, err
	}
	return s.repo.ExistsByIDAndLocale(ctx, id, loc)
}

// FindByIDAndLocale obtiene la entidad si tiene una traducción en el locale.
func (s *TranslatableService[E, ID, TR]) FindByIDAndLocale(ctx context.Context, id ID, locale string) (E, error) {
	var zero E
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return zero, err
	}
	entity, err := s.repo.FindByIDAndLocale(ctx, id, loc)
	if err != nil {
		return zero, err
	}
	return entity, nil
}

// FindAllByLocale lista las entidades que tienen al menos una traducción en el locale.
func (s *TranslatableService[E, ID, TR]) FindAllByLocale(ctx context.Context, locale string) ([]E, error) {
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAllByLocale(ctx, loc)
}

// FindAllByLocalePage variante paginada de FindAllByLocale.
func (s *TranslatableService[E, ID, TR]) FindAllByLocalePage(ctx context.Context, locale string, page PageRequest) (Page[E], error) {
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return Page[E]{}, err
	}
	page = page.Normalize()
	items, total, err := s.repo.FindAllByLocalePage(ctx, loc, page)
	if err != nil {
		return Page[E]{}, err
	}
	return NewPage(items, total, page), nil
}

// FindTranslationsByID lista las traducciones de la entidad.
func (s *TranslatableService[E, ID, TR]) FindTranslationsByID(ctx context.Context, id ID) ([]TR, error) {
	return s.repo.FindTranslationsByID(ctx, id)
}

// FindTranslationsByIDPage variante paginada de FindTranslationsByID.
func (s *TranslatableService[E, ID, TR]) FindTranslationsByIDPage(ctx context.Context, id ID, page PageRequest) (Page[TR], error) {
	page = page.Normalize()
	items, total, err := s.repo.FindTranslationsByIDPage(ctx, id, page)
	if err != nil {
		return Page[TR]{}, err
	}
	return NewPage(items, total, page), nil
}

// Save persiste la entidad y su colección de traducciones en una sola transacción.
func (s *TranslatableService[E, ID, TR]) Save(ctx context.Context, entity E) (E, error) {
	err := s.tx.Run(ctx, func(repo TranslatableRepository[E, ID, TR]) error {
		return repo.Save(ctx, entity)
	})
	if err != nil {
		var zero E
		return zero, err
	}
	return entity, nil
}

// DeleteByLocale elimina cada entidad que tenga al menos una traducción en el locale
// (con todas sus traducciones). Devuelve la cantidad de entidades eliminadas.
func (s *TranslatableService[E, ID, TR]) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return 0, err
	}
	var n int
	err = s.tx.Run(ctx, func(repo TranslatableRepository[E, ID, TR]) error {
		deleted, err := repo.DeleteByLocale(ctx, loc)
		if err != nil {
			return fmt.Errorf("delete by locale %s: %w", loc, err)
		}
		n = deleted
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteByIDAndLocale elimina la entidad solo si tiene una traducción en el locale (0 o 1).
func (s *TranslatableService[E, ID, TR]) DeleteByIDAndLocale(ctx context.Context, id ID, locale string) (int, error) {
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return 0, err
	}
	var n int
	err = s.tx.Run(ctx, func(repo TranslatableRepository[E, ID, TR]) error {
		deleted, err := repo.DeleteByIDAndLocale(ctx, id, loc)
		if err != nil {
			return fmt.Errorf("delete %v by locale %s: %w", id, loc, err)
		}
		n = deleted
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
