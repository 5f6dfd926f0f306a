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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
// Las traducciones se cargan con la categoría y se borran explícitamente (sin ON DELETE CASCADE).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// FindAll lista todas las categorías ordenadas por ID.
func (r *CategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return r.queryCategories(ctx, `SELECT id, created_at, updated_at FROM categories ORDER BY id`)
}

// FindByID obtiene una categoría con sus traducciones; ErrNotFound si no existe.
func (r *CategoryRepo) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT id, created_at, updated_at FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %s", translatable.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	c.CreatedAt, c.UpdatedAt = c.CreatedAt.UTC(), c.UpdatedAt.UTC()
	list, err := queryTranslations(ctx, r.q,
		`SELECT `+translationColumns+` FROM category_translations WHERE category_id = $1 ORDER BY locale`, id)
	if err != nil {
		return nil, err
	}
	c.Translations = list
	return &c, nil
}

// ExistsByIDAndLocale indica si la categoría tiene traducción en el locale.
func (r *CategoryRepo) ExistsByIDAndLocale(ctx context.Context, id, locale string) (bool, error) {
	return existsByCategoryAndLocale(ctx, r.q, id, locale)
}

// FindByIDAndLocale obtiene la categoría solo si tiene traducción en el locale.
func (r *CategoryRepo) FindByIDAndLocale(ctx context.Context, id, locale string) (*entity.Category, error) {
	ok, err := r.ExistsByIDAndLocale(ctx, id, locale)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: category %s in locale %s", translatable.ErrNotFound, id, locale)
	}
	return r.FindByID(ctx, id)
}

// FindAllByLocale categorías con traducción en el locale, ordenadas por ID.
func (r *CategoryRepo) FindAllByLocale(ctx context.Context, locale string) ([]*entity.Category, error) {
	return r.queryCategories(ctx, `
		SELECT c.id, c.created_at, c.updated_at FROM categories c
		WHERE EXISTS (SELECT 1 FROM category_translations t WHERE t.category_id = c.id AND t.locale = $1)
		ORDER BY c.id`, locale)
}

// FindAllByLocalePage variante paginada de FindAllByLocale.
func (r *CategoryRepo) FindAllByLocalePage(ctx context.Context, locale string, page translatable.PageRequest) ([]*entity.Category, int, error) {
	// Hay a lo sumo una traducción por (categoría, locale).
	total, err := queryCount(ctx, r.q, `SELECT count(*) FROM category_translations WHERE locale = $1`, locale)
	if err != nil {
		return nil, 0, err
	}
	list, err := r.queryCategories(ctx, `
		SELECT c.id, c.created_at, c.updated_at FROM categories c
		WHERE EXISTS (SELECT 1 FROM category_translations t WHERE t.category_id = c.id AND t.locale = $1)
		ORDER BY c.id LIMIT $2 OFFSET $3`, locale, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// FindTranslationsByID traducciones de la categoría ordenadas por locale.
func (r *CategoryRepo) FindTranslationsByID(ctx context.Context, id string) ([]*entity.CategoryTranslation, error) {
	return queryTranslations(ctx, r.q,
		`SELECT `+translationColumns+` FROM category_translations WHERE category_id = $1 ORDER BY locale`, id)
}

// FindTranslationsByIDPage variante paginada de FindTranslationsByID.
func (r *CategoryRepo) FindTranslationsByIDPage(ctx context.Context, id string, page translatable.PageRequest) ([]*entity.CategoryTranslation, int, error) {
	return findTranslationsPage(ctx, r.q, id, page)
}

// Save inserta la categoría nueva o actualiza la ya cargada, y sincroniza sus traducciones:
// borra las que ya no están en la colección y hace upsert del resto.
// Una categoría cargada que ya no existe devuelve translatable.ErrNotFound.
func (r *CategoryRepo) Save(ctx context.Context, c *entity.Category) error {
	if c.IsPersisted() {
		cmd, err := r.q.Exec(ctx, `UPDATE categories SET updated_at = $2 WHERE id = $1`, c.ID, c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("update category: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return fmt.Errorf("%w: category %s", translatable.ErrNotFound, c.ID)
		}
	} else {
		_, err := r.q.Exec(ctx, `INSERT INTO categories (id, created_at, updated_at) VALUES ($1, $2, $3)`,
			c.ID, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert category: %w", err)
		}
	}

	keep := make([]string, 0, len(c.Translations))
	for _, t := range c.Translations {
		keep = append(keep, t.ID)
	}
	if _, err := r.q.Exec(ctx,
		`DELETE FROM category_translations WHERE category_id = $1 AND NOT (id = ANY($2))`, c.ID, keep); err != nil {
		return fmt.Errorf("delete orphan category translations: %w", err)
	}

	for _, t := range c.Translations {
		t.CategoryID = c.ID
		if err := upsertTranslation(ctx, r.q, t); err != nil {
			return err
		}
	}
	c.MarkPersisted()
	return nil
}

// Delete elimina la categoría y sus traducciones.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.deleteCategories(ctx, []string{id})
	return err
}

// DeleteByLocale elimina las categorías con traducción en el locale. Devuelve cuántas.
func (r *CategoryRepo) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	rows, err := r.q.Query(ctx, `SELECT category_id FROM category_translations WHERE locale = $1`, locale)
	if err != nil {
		return 0, fmt.Errorf("list categories by locale: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return 0, fmt.Errorf("scan category id: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return r.deleteCategories(ctx, ids)
}

// DeleteByIDAndLocale elimina la categoría solo si tiene traducción en el locale (0 o 1).
func (r *CategoryRepo) DeleteByIDAndLocale(ctx context.Context, id, locale string) (int, error) {
	ok, err := r.ExistsByIDAndLocale(ctx, id, locale)
	if err != nil || !ok {
		return 0, err
	}
	return r.deleteCategories(ctx, []string{id})
}

func (r *CategoryRepo) deleteCategories(ctx context.Context, ids []string) (int, error) {
	if _, err := r.q.Exec(ctx, `DELETE FROM category_translations WHERE category_id = ANY($1)`, ids); err != nil {
		return 0, fmt.Errorf("delete category translations: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete categories: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// queryCategories ejecuta query (id, created_at, updated_at) y carga las traducciones de todas
// las categorías con una sola consulta adicional.
func (r *CategoryRepo) queryCategories(ctx context.Context, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	byID := map[string]*entity.Category{}
	ids := []string{}
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.CreatedAt, c.UpdatedAt = c.CreatedAt.UTC(), c.UpdatedAt.UTC()
		c.MarkPersisted()
		list = append(list, &c)
		byID[c.ID] = &c
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()
	if len(ids) == 0 {
		return list, nil
	}

	translations, err := queryTranslations(ctx, r.q,
		`SELECT `+translationColumns+` FROM category_translations WHERE category_id = ANY($1) ORDER BY category_id, locale`, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range translations {
		if c, ok := byID[t.CategoryID]; ok {
			c.Translations = append(c.Translations, t)
		}
	}
	return list, nil
}
