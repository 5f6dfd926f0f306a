package repository

import (
	"context"

	"github.com/jhoicas/translatable-api/internal/domain/entity"
	"github.com/jhoicas/translatable-api/pkg/translatable"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// FindAll ordena por ID (orden de creación).
type CategoryRepository interface {
	translatable.TranslatableRepository[*entity.Category, string, *entity.CategoryTranslation]
}

// CategoryTranslationRepository define el puerto de persistencia para CategoryTranslation.
type CategoryTranslationRepository interface {
	translatable.TranslationRepository[*entity.CategoryTranslation, string]
	translatable.NameFinder[*entity.CategoryTranslation]
	// ExistsByLocaleAndName indica si alguna traducción usa ese nombre en el locale.
	ExistsByLocaleAndName(ctx context.Context, locale, name string) (bool, error)
	// ExistsByLocaleAndNameExcludingID igual que ExistsByLocaleAndName ignorando la traducción excludeID.
	ExistsByLocaleAndNameExcludingID(ctx context.Context, locale, name, excludeID string) (bool, error)
}

// CategoryStore agrupa los repositorios de categorías atados a una misma conexión o transacción.
type CategoryStore struct {
	Categories   CategoryRepository
	Translations CategoryTranslationRepository
}
