package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/translatable-api/internal/application/dto"
	"github.com/jhoicas/translatable-api/internal/domain"
	"github.com/jhoicas/translatable-api/internal/domain/entity"
	"github.com/jhoicas/translatable-api/internal/domain/repository"
	"github.com/jhoicas/translatable-api/pkg/translatable"
)

type categoryTranslationService = translatable.TranslationService[*entity.CategoryTranslation, string]

// CategoryTranslationUseCase consultas y borrados sobre traducciones de categorías.
type CategoryTranslationUseCase struct {
	categories repository.CategoryRepository
	generic    *categoryTranslationService
	log        zerolog.Logger
}

// NewCategoryTranslationUseCase construye el caso de uso.
func NewCategoryTranslationUseCase(store repository.CategoryStore, tx translatable.TxRunner[repository.CategoryStore], log zerolog.Logger) *CategoryTranslationUseCase {
	translationsTx := translatable.MapTx(tx, func(s repository.CategoryStore) translatable.TranslationRepository[*entity.CategoryTranslation, string] {
		return s.Translations
	})
	return &CategoryTranslationUseCase{
		categories: store.Categories,
		generic:    translatable.NewTranslationService[*entity.CategoryTranslation, string](store.Translations, translationsTx),
		log:        log.With().Str("usecase", "category_translation").Logger(),
	}
}

// ListByCategory lista paginada de las traducciones de la categoría (NotFound si no existe).
func (uc *CategoryTranslationUseCase) ListByCategory(ctx context.Context, categoryID string, page dto.PageRequest) (*dto.CategoryTranslationListResponse, error) {
	if _, err := uc.categories.FindByID(ctx, categoryID); err != nil {
		return nil, categoryNotFound(err)
	}
	p, err := uc.generic.FindByOwnerIDPage(ctx, categoryID, page.ToPage())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryTranslationDetailResponse, 0, len(p.Items))
	for _, t := range p.Items {
		items = append(items, *toCategoryTranslationDetail(t))
	}
	return &dto.CategoryTranslationListResponse{Items: items, Page: dto.NewPageResponse(p)}, nil
}

// Get obtiene la traducción de la categoría en el locale.
func (uc *CategoryTranslationUseCase) Get(ctx context.Context, categoryID, locale string) (*dto.CategoryTranslationDetailResponse, error) {
	t, err := uc.generic.FindByOwnerIDAndLocale(ctx, categoryID, locale)
	if err != nil {
		return nil, translationNotFound(err)
	}
	return toCategoryTranslationDetail(t), nil
}

// Search busca traducciones por nombre exacto y locale.
func (uc *CategoryTranslationUseCase) Search(ctx context.Context, name, locale string) ([]dto.CategoryTranslationDetailResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewBadRequest("Name is required")
	}
	list, err := uc.generic.FindByNameAndLocale(ctx, name, locale)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryTranslationDetailResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toCategoryTranslationDetail(t))
	}
	return out, nil
}

// Delete elimina la traducción de la categoría en el locale; la categoría se conserva.
func (uc *CategoryTranslationUseCase) Delete(ctx context.Context, categoryID, locale string) error {
	if _, err := uc.generic.DeleteByOwnerIDAndLocale(ctx, categoryID, locale); err != nil {
		return translationNotFound(err)
	}
	uc.log.Info().Str("category_id", categoryID).Str("locale", locale).Msg("traducción eliminada")
	return nil
}

// DeleteByLocale elimina todas las traducciones del locale (BadRequest si no hay ninguna).
func (uc *CategoryTranslationUseCase) DeleteByLocale(ctx context.Context, locale string) (*dto.DeletedResponse, error) {
	n, err := uc.generic.DeleteByLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("locale", locale).Int("deleted", n).Msg("traducciones eliminadas por locale")
	return &dto.DeletedResponse{Deleted: n}, nil
}

func translationNotFound(err error) error {
	if errors.Is(err, translatable.ErrNotFound) {
		return domain.NewNotFound(MsgCategoryTranslationNotFound)
	}
	return err
}

func toCategoryTranslationDetail(t *entity.CategoryTranslation) *dto.CategoryTranslationDetailResponse {
	if t == nil {
		return nil
	}
	return &dto.CategoryTranslationDetailResponse{
		ID:          t.ID,
		CategoryID:  t.CategoryID,
		Locale:      t.Locale,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
