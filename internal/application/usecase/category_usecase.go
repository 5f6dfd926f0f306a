package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/translatable-api/internal/application/dto"
	"github.com/jhoicas/translatable-api/internal/domain"
	"github.com/jhoicas/translatable-api/internal/domain/entity"
	"github.com/jhoicas/translatable-api/internal/domain/repository"
	"github.com/jhoicas/translatable-api/pkg/idgen"
	"github.com/jhoicas/translatable-api/pkg/translatable"
)

// Mensajes de error expuestos al cliente.
const (
	MsgCategoryNotFound            = "Category not found"
	MsgCategoryTranslationNotFound = "Category translation not found"
)

type categoryService = translatable.TranslatableService[*entity.Category, string, *entity.CategoryTranslation]

// CategoryUseCase casos de uso de categorías: CRUD con unicidad de (locale, nombre)
// y las operaciones genéricas por locale.
type CategoryUseCase struct {
	store   repository.CategoryStore
	tx      translatable.TxRunner[repository.CategoryStore]
	generic *categoryService
	ids     idgen.Generator
	log     zerolog.Logger
	now     func() time.Time
}

// NewCategoryUseCase construye el caso de uso. store se usa para lecturas; tx para escrituras.
func NewCategoryUseCase(store repository.CategoryStore, tx translatable.TxRunner[repository.CategoryStore], ids idgen.Generator, log zerolog.Logger) *CategoryUseCase {
	categoriesTx := translatable.MapTx(tx, func(s repository.CategoryStore) translatable.TranslatableRepository[*entity.Category, string, *entity.CategoryTranslation] {
		return s.Categories
	})
	return &CategoryUseCase{
		store:   store,
		tx:      tx,
		generic: translatable.NewTranslatableService[*entity.Category, string, *entity.CategoryTranslation](store.Categories, categoriesTx),
		ids:     ids,
		log:     log.With().Str("usecase", "category").Logger(),
		now:     time.Now,
	}
}

// GetAll lista todas las categorías en orden de creación.
func (uc *CategoryUseCase) GetAll(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.store.Categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// FindByID obtiene una categoría por ID.
func (uc *CategoryUseCase) FindByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.store.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, categoryNotFound(err)
	}
	return toCategoryResponse(category), nil
}

// Create crea la categoría con todas sus traducciones en una sola transacción.
// Falla con BadRequest si algún (locale, nombre) ya existe.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := uc.now()
	category := entity.NewCategory(uc.ids.NewID(), now)

	err := uc.tx.Run(ctx, func(repos repository.CategoryStore) error {
		for _, locale := range dto.SortedLocales(in.Translations) {
			tr := in.Translations[locale]
			if err := ensureNameAvailable(ctx, repos.Translations, locale, *tr.Name, ""); err != nil {
				return err
			}
			category.AddTranslation(entity.NewCategoryTranslation(uc.ids.NewID(), locale, *tr.Name, tr.Description, now))
		}
		return repos.Categories.Save(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", category.ID).Strs("locales", category.Locales()).Msg("categoría creada")
	return toCategoryResponse(category), nil
}

// Update actualiza parcialmente la categoría. Los locales existentes solo cambian los campos
// enviados; los nuevos requieren nombre. Los locales no mencionados no se tocan.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := uc.now()
	var category *entity.Category

	err := uc.tx.Run(ctx, func(repos repository.CategoryStore) error {
		var err error
		category, err = repos.Categories.FindByID(ctx, id)
		if err != nil {
			return categoryNotFound(err)
		}
		changed := false
		for _, locale := range dto.SortedLocales(in.Translations) {
			tr := in.Translations[locale]
			if existing := category.Translation(locale); existing != nil {
				if tr.Name != nil && *tr.Name != existing.Name {
					if err := ensureNameAvailable(ctx, repos.Translations, locale, *tr.Name, existing.ID); err != nil {
						return err
					}
				}
				if existing.Apply(tr.Name, tr.Description, now) {
					changed = true
				}
				continue
			}
			if tr.Name == nil || strings.TrimSpace(*tr.Name) == "" {
				return domain.NewBadRequest("Name cannot be blank for new locale '%s'", locale)
			}
			if err := ensureNameAvailable(ctx, repos.Translations, locale, *tr.Name, ""); err != nil {
				return err
			}
			category.AddTranslation(entity.NewCategoryTranslation(uc.ids.NewID(), locale, *tr.Name, tr.Description, now))
			changed = true
		}
		if changed {
			category.Touch(now)
		}
		// La categoría pudo borrarse en otra transacción después de cargarla.
		return categoryNotFound(repos.Categories.Save(ctx, category))
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", category.ID).Strs("locales", dto.SortedLocales(in.Translations)).Msg("categoría actualizada")
	return toCategoryResponse(category), nil
}

// Delete elimina la categoría con todas sus traducciones.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	err := uc.tx.Run(ctx, func(repos repository.CategoryStore) error {
		if _, err := repos.Categories.FindByID(ctx, id); err != nil {
			return categoryNotFound(err)
		}
		return repos.Categories.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("category_id", id).Msg("categoría eliminada")
	return nil
}

// ListByLocale lista paginada de las categorías que tienen traducción en el locale.
func (uc *CategoryUseCase) ListByLocale(ctx context.Context, locale string, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	p, err := uc.generic.FindAllByLocalePage(ctx, locale, page.ToPage())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(p.Items))
	for _, c := range p.Items {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items, Page: dto.NewPageResponse(p)}, nil
}

// FindByIDAndLocale obtiene la categoría solo si tiene traducción en el locale.
func (uc *CategoryUseCase) FindByIDAndLocale(ctx context.Context, id, locale string) (*dto.CategoryResponse, error) {
	category, err := uc.generic.FindByIDAndLocale(ctx, id, locale)
	if err != nil {
		return nil, categoryNotFound(err)
	}
	return toCategoryResponse(category), nil
}

// DeleteByLocale elimina todas las categorías que tienen traducción en el locale.
func (uc *CategoryUseCase) DeleteByLocale(ctx context.Context, locale string) (*dto.DeletedResponse, error) {
	n, err := uc.generic.DeleteByLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("locale", locale).Int("deleted", n).Msg("categorías eliminadas por locale")
	return &dto.DeletedResponse{Deleted: n}, nil
}

// DeleteByIDAndLocale elimina la categoría solo si tiene traducción en el locale; si no, NotFound.
func (uc *CategoryUseCase) DeleteByIDAndLocale(ctx context.Context, id, locale string) error {
	n, err := uc.generic.DeleteByIDAndLocale(ctx, id, locale)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound(MsgCategoryNotFound)
	}
	uc.log.Info().Str("category_id", id).Str("locale", locale).Msg("categoría eliminada")
	return nil
}

// ensureNameAvailable falla con BadRequest si (locale, name) ya lo usa otra traducción.
func ensureNameAvailable(ctx context.Context, repo repository.CategoryTranslationRepository, locale, name, excludeID string) error {
	var (
		exists bool
		err    error
	)
	if excludeID == "" {
		exists, err = repo.ExistsByLocaleAndName(ctx, locale, name)
	} else {
		exists, err = repo.ExistsByLocaleAndNameExcludingID(ctx, locale, name, excludeID)
	}
	if err != nil {
		return err
	}
	if exists {
		return domain.NewBadRequest("Category with name '%s' already exists in locale '%s'", name, locale)
	}
	return nil
}

func categoryNotFound(err error) error {
	if errors.Is(err, translatable.ErrNotFound) {
		return domain.NewNotFound(MsgCategoryNotFound)
	}
	return err
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	translations := make(map[string]dto.CategoryTranslationResponse, len(c.Translations))
	for _, t := range c.Translations {
		translations[t.Locale] = dto.CategoryTranslationResponse{
			Name:        t.Name,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		}
	}
	return &dto.CategoryResponse{
		ID:           c.ID,
		Translations: translations,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
