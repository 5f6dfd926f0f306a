package translatable

import (
	"context"
	"fmt"
)

// TranslationService operaciones reutilizables sobre traducciones.
type TranslationService[TR Translation[ID], ID comparable] struct {
	repo TranslationRepository[TR, ID]
	tx   TxRunner[TranslationRepository[TR, ID]]
}

// NewTranslationService construye el servicio.
func NewTranslationService[TR Translation[ID], ID comparable](
	repo TranslationRepository[TR, ID],
	tx TxRunner[TranslationRepository[TR, ID]],
) *TranslationService[TR, ID] {
	return &TranslationService[TR, ID]{repo: repo, tx: tx}
}

// ExistsByOwnerID indica si el dueño tiene al menos una traducción.
func (s *TranslationService[TR, ID]) ExistsByOwnerID(ctx context.Context, ownerID ID) (bool, error) {
	return s.repo.ExistsByOwnerID(ctx, ownerID)
}

// FindByOwnerID lista las traducciones del dueño ordenadas por locale.
func (s *TranslationService[TR, ID]) FindByOwnerID(ctx context.Context, ownerID ID) ([]TR, error) {
	return s.repo.FindByOwnerID(ctx, ownerID)
}

// FindByOwnerIDPage variante paginada de FindByOwnerID.
func (s *TranslationService[TR, ID]) FindByOwnerIDPage(ctx context.Context, ownerID ID, page PageRequest) (Page[TR], error) {
	page = page.Normalize()
	items, total, err := s.repo.FindByOwnerIDPage(ctx, ownerID, page)
	if err != nil {
		return Page[TR]{}, err
	}
	return NewPage(items, total, page), nil
}

// ExistsByLocale indica si existe alguna traducción en el locale.
func (s *TranslationService[TR, ID]) ExistsByLocale(ctx context.Context, locale string) (bool, error) {
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return false, err
	}
	return s.repo.ExistsByLocale(ctx, loc)
}

// ExistsByOwnerIDAndLocale indica si el dueño tiene una traducción en el locale.
func (s *TranslationService[TR, ID]) ExistsByOwnerIDAndLocale(ctx context.Context, ownerID ID, locale string) (bool, error) {
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return false, err
	}
	return s.repo.ExistsByOwnerIDAndLocale(ctx, ownerID, loc)
}

// FindByOwnerIDAndLocale obtiene la traducción del dueño en el locale.
func (s *TranslationService[TR, ID]) FindByOwnerIDAndLocale(ctx context.Context, ownerID ID, locale string) (TR, error) {
	var zero TR
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return zero, err
	}
	return s.repo.FindByOwnerIDAndLocale(ctx, ownerID, loc)
}

// FindByNameAndLocale busca traducciones por nombre y locale. Requiere que el repositorio
// implemente NameFinder; si no, devuelve ErrUnsupported.
func (s *TranslationService[TR, ID]) FindByNameAndLocale(ctx context.Context, name, locale string) ([]TR, error) {
	finder, ok := s.repo.(NameFinder[TR])
	if !ok {
		return nil, fmt.Errorf("%w: find by name and locale", ErrUnsupported)
	}
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return nil, err
	}
	return finder.FindByNameAndLocale(ctx, name, loc)
}

// Save persiste la traducción en una transacción.
func (s *TranslationService[TR, ID]) Save(ctx context.Context, translation TR) (TR, error) {
	err := s.tx.Run(ctx, func(repo TranslationRepository[TR, ID]) error {
		return repo.Save(ctx, translation)
	})
	if err != nil {
		var zero TR
		return zero, err
	}
	return translation, nil
}

// DeleteByOwnerIDAndLocale elimina la traducción del dueño en el locale.
// Devuelve ErrNotFound si no existe antes de intentar el borrado.
func (s *TranslationService[TR, ID]) DeleteByOwnerIDAndLocale(ctx context.Context, ownerID ID, locale string) (int, error) {
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return 0, err
	}
	var n int
	err = s.tx.Run(ctx, func(repo TranslationRepository[TR, ID]) error {
		exists, err := repo.ExistsByOwnerIDAndLocale(ctx, ownerID, loc)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: translation for owner id %v and locale %s", ErrNotFound, ownerID, loc)
		}
		n, err = repo.DeleteByOwnerIDAndLocale(ctx, ownerID, loc)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteByLocale elimina todas las traducciones del locale.
// Devuelve ErrInvalidArgument si no hay ninguna.
func (s *TranslationService[TR, ID]) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	loc, err := CanonicalLocale(locale)
	if err != nil {
		return 0, err
	}
	var n int
	err = s.tx.Run(ctx, func(repo TranslationRepository[TR, ID]) error {
		exists, err := repo.ExistsByLocale(ctx, loc)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: no translations found for locale %s", ErrInvalidArgument, loc)
		}
		n, err = repo.DeleteByLocale(ctx, loc)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
