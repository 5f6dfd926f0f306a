package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/translatable-api/internal/domain"
	"github.com/jhoicas/translatable-api/internal/domain/entity"
	"github.com/jhoicas/translatable-api/internal/domain/repository"
	"github.com/jhoicas/translatable-api/pkg/translatable"
)

var _ repository.CategoryTranslationRepository = (*CategoryTranslationRepo)(nil)

const translationColumns = `id, category_id, locale, name, description, created_at, updated_at`

// CategoryTranslationRepo implementación del puerto CategoryTranslationRepository sobre PostgreSQL (usable con pool o tx).
type CategoryTranslationRepo struct {
	q Querier
}

// NewCategoryTranslationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryTranslationRepository(q Querier) *CategoryTranslationRepo {
	return &CategoryTranslationRepo{q: q}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTranslation(s scanner) (*entity.CategoryTranslation, error) {
	var t entity.CategoryTranslation
	if err := s.Scan(&t.ID, &t.CategoryID, &t.Locale, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}

// queryTranslations ejecuta query y escanea todas las filas de traducciones.
func queryTranslations(ctx context.Context, q Querier, query string, args ...any) ([]*entity.CategoryTranslation, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query category translations: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoryTranslation
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category translation: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func queryExists(ctx context.Context, q Querier, query string, args ...any) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}
	return exists, nil
}

func queryCount(ctx context.Context, q Querier, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// upsertTranslation inserta o actualiza una traducción por ID.
func upsertTranslation(ctx context.Context, q Querier, t *entity.CategoryTranslation) error {
	query := `
		INSERT INTO category_translations (` + translationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			locale = EXCLUDED.locale,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at`
	_, err := q.Exec(ctx, query, t.ID, t.CategoryID, t.Locale, t.Name, t.Description, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: category %s", translatable.ErrNotFound, t.CategoryID)
		}
		return fmt.Errorf("upsert category translation: %w", err)
	}
	return nil
}

// ExistsByOwnerID indica si la categoría tiene al menos una traducción.
func (r *CategoryTranslationRepo) ExistsByOwnerID(ctx context.Context, ownerID string) (bool, error) {
	return queryExists(ctx, r.q, `SELECT EXISTS(SELECT 1 FROM category_translations WHERE category_id = $1)`, ownerID)
}

// FindByOwnerID traducciones de la categoría ordenadas por locale.
func (r *CategoryTranslationRepo) FindByOwnerID(ctx context.Context, ownerID string) ([]*entity.CategoryTranslation, error) {
	return queryTranslations(ctx, r.q,
		`SELECT `+translationColumns+` FROM category_translations WHERE category_id = $1 ORDER BY locale`, ownerID)
}

// FindByOwnerIDPage variante paginada de FindByOwnerID.
func (r *CategoryTranslationRepo) FindByOwnerIDPage(ctx context.Context, ownerID string, page translatable.PageRequest) ([]*entity.CategoryTranslation, int, error) {
	return findTranslationsPage(ctx, r.q, ownerID, page)
}

func findTranslationsPage(ctx context.Context, q Querier, ownerID string, page translatable.PageRequest) ([]*entity.CategoryTranslation, int, error) {
	total, err := queryCount(ctx, q, `SELECT count(*) FROM category_translations WHERE category_id = $1`, ownerID)
	if err != nil {
		return nil, 0, err
	}
	list, err := queryTranslations(ctx, q,
		`SELECT `+translationColumns+` FROM category_translations WHERE category_id = $1 ORDER BY locale LIMIT $2 OFFSET $3`,
		ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ExistsByLocale indica si existe alguna traducción en el locale.
func (r *CategoryTranslationRepo) ExistsByLocale(ctx context.Context, locale string) (bool, error) {
	return queryExists(ctx, r.q, `SELECT EXISTS(SELECT 1 FROM category_translations WHERE locale = $1)`, locale)
}

// ExistsByOwnerIDAndLocale indica si la categoría tiene traducción en el locale.
func (r *CategoryTranslationRepo) ExistsByOwnerIDAndLocale(ctx context.Context, ownerID, locale string) (bool, error) {
	return existsByCategoryAndLocale(ctx, r.q, ownerID, locale)
}

func existsByCategoryAndLocale(ctx context.Context, q Querier, categoryID, locale string) (bool, error) {
	return queryExists(ctx, q,
		`SELECT EXISTS(SELECT 1 FROM category_translations WHERE category_id = $1 AND locale = $2)`, categoryID, locale)
}

// FindByOwnerIDAndLocale obtiene la traducción; ErrNotFound si no existe.
func (r *CategoryTranslationRepo) FindByOwnerIDAndLocale(ctx context.Context, ownerID, locale string) (*entity.CategoryTranslation, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+translationColumns+` FROM category_translations WHERE category_id = $1 AND locale = $2`, ownerID, locale)
	t, err := scanTranslation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: translation %s/%s", translatable.ErrNotFound, ownerID, locale)
		}
		return nil, fmt.Errorf("get category translation: %w", err)
	}
	return t, nil
}

// FindByNameAndLocale traducciones con ese nombre exacto en el locale.
func (r *CategoryTranslationRepo) FindByNameAndLocale(ctx context.Context, name, locale string) ([]*entity.CategoryTranslation, error) {
	return queryTranslations(ctx, r.q,
		`SELECT `+translationColumns+` FROM category_translations WHERE name = $1 AND locale = $2 ORDER BY id`, name, locale)
}

// ExistsByLocaleAndName indica si (locale, name) ya está en uso.
func (r *CategoryTranslationRepo) ExistsByLocaleAndName(ctx context.Context, locale, name string) (bool, error) {
	return queryExists(ctx, r.q,
		`SELECT EXISTS(SELECT 1 FROM category_translations WHERE locale = $1 AND name = $2)`, locale, name)
}

// ExistsByLocaleAndNameExcludingID igual que ExistsByLocaleAndName ignorando excludeID.
func (r *CategoryTranslationRepo) ExistsByLocaleAndNameExcludingID(ctx context.Context, locale, name, excludeID string) (bool, error) {
	return queryExists(ctx, r.q,
		`SELECT EXISTS(SELECT 1 FROM category_translations WHERE locale = $1 AND name = $2 AND id <> $3)`, locale, name, excludeID)
}

// Save inserta o actualiza la traducción. La categoría debe existir.
func (r *CategoryTranslationRepo) Save(ctx context.Context, t *entity.CategoryTranslation) error {
	return upsertTranslation(ctx, r.q, t)
}

// DeleteByOwnerIDAndLocale elimina la traducción de la categoría en el locale (0 o 1).
func (r *CategoryTranslationRepo) DeleteByOwnerIDAndLocale(ctx context.Context, ownerID, locale string) (int, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM category_translations WHERE category_id = $1 AND locale = $2`, ownerID, locale)
	if err != nil {
		return 0, fmt.Errorf("delete category translation: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// DeleteByLocale elimina todas las traducciones del locale.
func (r *CategoryTranslationRepo) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM category_translations WHERE locale = $1`, locale)
	if err != nil {
		return 0, fmt.Errorf("delete category translations by locale: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}
