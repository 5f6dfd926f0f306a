// Package memstore implementa en memoria los repositorios de categorías y el TxRunner,
// con rollback por instantánea y las mismas restricciones únicas que el esquema SQL.
// Solo para tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/translatable-api/internal/domain"
	"github.com/jhoicas/translatable-api/internal/domain/entity"
	"github.com/jhoicas/translatable-api/internal/domain/repository"
	"github.com/jhoicas/translatable-api/pkg/translatable"
)

var (
	_ repository.CategoryRepository                   = (*CategoryRepo)(nil)
	_ repository.CategoryTranslationRepository        = (*CategoryTranslationRepo)(nil)
	_ translatable.TxRunner[repository.CategoryStore] = (*Store)(nil)
)

type categoryRow struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
}

// Store tablas en memoria.
type Store struct {
	mu           sync.Mutex
	categories   map[string]categoryRow
	translations map[string]entity.CategoryTranslation
	failures     map[string]error
	commits      int
	rollbacks    int
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		categories:   map[string]categoryRow{},
		translations: map[string]entity.CategoryTranslation{},
		failures:     map[string]error{},
	}
}

// Fail hace que la operación op ("category.save", "translation.delete_by_locale", ...) devuelva err.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// Repos devuelve los repositorios sobre el store (fuera de transacción).
func (s *Store) Repos() repository.CategoryStore {
	return repository.CategoryStore{
		Categories:   &CategoryRepo{s: s},
		Translations: &CategoryTranslationRepo{s: s},
	}
}

// Run ejecuta fn y restaura el estado previo si devuelve error.
func (s *Store) Run(ctx context.Context, fn func(repos repository.CategoryStore) error) error {
	s.mu.Lock()
	cats, trs := s.snapshot()
	s.mu.Unlock()

	if err := fn(s.Repos()); err != nil {
		s.mu.Lock()
		s.categories, s.translations = cats, trs
		s.rollbacks++
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.commits++
	s.mu.Unlock()
	return nil
}

// Stats devuelve la cantidad de commits y rollbacks.
func (s *Store) Stats() (commits, rollbacks int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits, s.rollbacks
}

// CountCategories cantidad de categorías persistidas.
func (s *Store) CountCategories() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.categories)
}

// CountTranslations cantidad de traducciones persistidas.
func (s *Store) CountTranslations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.translations)
}

func (s *Store) snapshot() (map[string]categoryRow, map[string]entity.CategoryTranslation) {
	cats := make(map[string]categoryRow, len(s.categories))
	for k, v := range s.categories {
		cats[k] = v
	}
	trs := make(map[string]entity.CategoryTranslation, len(s.translations))
	for k, v := range s.translations {
		trs[k] = cloneTranslation(v)
	}
	return cats, trs
}

func (s *Store) fail(op string) error {
	return s.failures[op]
}

func cloneTranslation(t entity.CategoryTranslation) entity.CategoryTranslation {
	if t.Description != nil {
		d := *t.Description
		t.Description = &d
	}
	return t
}

// translationsOf traducciones de la categoría ordenadas por locale (copias).
func (s *Store) translationsOf(categoryID string) []*entity.CategoryTranslation {
	var out []*entity.CategoryTranslation
	for _, t := range s.translations {
		if t.CategoryID == categoryID {
			c := cloneTranslation(t)
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Locale < out[j].Locale })
	return out
}

func (s *Store) hasLocale(categoryID, locale string) bool {
	for _, t := range s.translations {
		if t.CategoryID == categoryID && t.Locale == locale {
			return true
		}
	}
	return false
}

func (s *Store) load(id string) *entity.Category {
	row := s.categories[id]
	c := &entity.Category{
		ID:           row.id,
		Translations: s.translationsOf(id),
		CreatedAt:    row.createdAt,
		UpdatedAt:    row.updatedAt,
	}
	c.MarkPersisted()
	return c
}

func (s *Store) sortedCategoryIDs() []string {
	ids := make([]string, 0, len(s.categories))
	for id := range s.categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// checkUnique emula uk_category_translations_locale_name y uk_category_translations_category_locale.
func (s *Store) checkUnique(t *entity.CategoryTranslation) error {
	for id, other := range s.translations {
		if id == t.ID {
			continue
		}
		if other.Locale == t.Locale && other.Name == t.Name {
			return domain.ErrDuplicate
		}
		if other.CategoryID == t.CategoryID && other.Locale == t.Locale {
			return domain.ErrDuplicate
		}
	}
	return nil
}

func (s *Store) deleteCategory(id string) {
	for tid, t := range s.translations {
		if t.CategoryID == id {
			delete(s.translations, tid)
		}
	}
	delete(s.categories, id)
}

func page[T any](items []T, p translatable.PageRequest) []T {
	if p.Offset >= len(items) {
		return nil
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}

// CategoryRepo repositorio de categorías en memoria.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("category.find_all"); err != nil {
		return nil, err
	}
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, id := range r.s.sortedCategoryIDs() {
		out = append(out, r.s.load(id))
	}
	return out, nil
}

func (r *CategoryRepo) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("category.find_by_id"); err != nil {
		return nil, err
	}
	if _, ok := r.s.categories[id]; !ok {
		return nil, fmt.Errorf("%w: category %s", translatable.ErrNotFound, id)
	}
	return r.s.load(id), nil
}

func (r *CategoryRepo) ExistsByIDAndLocale(ctx context.Context, id, locale string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.categories[id]
	return ok && r.s.hasLocale(id, locale), nil
}

func (r *CategoryRepo) FindByIDAndLocale(ctx context.Context, id, locale string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok || !r.s.hasLocale(id, locale) {
		return nil, fmt.Errorf("%w: category %s in locale %s", translatable.ErrNotFound, id, locale)
	}
	return r.s.load(id), nil
}

func (r *CategoryRepo) FindAllByLocale(ctx context.Context, locale string) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Category
	for _, id := range r.s.sortedCategoryIDs() {
		if r.s.hasLocale(id, locale) {
			out = append(out, r.s.load(id))
		}
	}
	return out, nil
}

func (r *CategoryRepo) FindAllByLocalePage(ctx context.Context, locale string, p translatable.PageRequest) ([]*entity.Category, int, error) {
	all, err := r.FindAllByLocale(ctx, locale)
	if err != nil {
		return nil, 0, err
	}
	return page(all, p), len(all), nil
}

func (r *CategoryRepo) FindTranslationsByID(ctx context.Context, id string) ([]*entity.CategoryTranslation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.translationsOf(id), nil
}

func (r *CategoryRepo) FindTranslationsByIDPage(ctx context.Context, id string, p translatable.PageRequest) ([]*entity.CategoryTranslation, int, error) {
	all, err := r.FindTranslationsByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	return page(all, p), len(all), nil
}

func (r *CategoryRepo) Save(ctx context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("category.save"); err != nil {
		return err
	}
	_, exists := r.s.categories[c.ID]
	switch {
	case c.IsPersisted() && !exists:
		return fmt.Errorf("%w: category %s", translatable.ErrNotFound, c.ID)
	case !c.IsPersisted() && exists:
		return domain.ErrDuplicate
	}
	keep := map[string]bool{}
	for _, t := range c.Translations {
		keep[t.ID] = true
	}
	// Las huérfanas se borran antes de validar, como en el repositorio SQL.
	for id, t := range r.s.translations {
		if t.CategoryID == c.ID && !keep[id] {
			delete(r.s.translations, id)
		}
	}
	for _, t := range c.Translations {
		t.CategoryID = c.ID
		if err := r.s.checkUnique(t); err != nil {
			return err
		}
	}
	r.s.categories[c.ID] = categoryRow{id: c.ID, createdAt: c.CreatedAt, updatedAt: c.UpdatedAt}
	for _, t := range c.Translations {
		r.s.translations[t.ID] = cloneTranslation(*t)
	}
	c.MarkPersisted()
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("category.delete"); err != nil {
		return err
	}
	r.s.deleteCategory(id)
	return nil
}

func (r *CategoryRepo) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, id := range r.s.sortedCategoryIDs() {
		if r.s.hasLocale(id, locale) {
			r.s.deleteCategory(id)
			n++
		}
	}
	if err := r.s.fail("category.delete_by_locale"); err != nil {
		return n, err
	}
	return n, nil
}

func (r *CategoryRepo) DeleteByIDAndLocale(ctx context.Context, id, locale string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok || !r.s.hasLocale(id, locale) {
		return 0, nil
	}
	r.s.deleteCategory(id)
	return 1, nil
}

// CategoryTranslationRepo repositorio de traducciones en memoria.
type CategoryTranslationRepo struct {
	s *Store
}

func (r *CategoryTranslationRepo) ExistsByOwnerID(ctx context.Context, ownerID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.translations {
		if t.CategoryID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *CategoryTranslationRepo) FindByOwnerID(ctx context.Context, ownerID string) ([]*entity.CategoryTranslation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.translationsOf(ownerID), nil
}

func (r *CategoryTranslationRepo) FindByOwnerIDPage(ctx context.Context, ownerID string, p translatable.PageRequest) ([]*entity.CategoryTranslation, int, error) {
	all, err := r.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	return page(all, p), len(all), nil
}

func (r *CategoryTranslationRepo) ExistsByLocale(ctx context.Context, locale string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.translations {
		if t.Locale == locale {
			return true, nil
		}
	}
	return false, nil
}

func (r *CategoryTranslationRepo) ExistsByOwnerIDAndLocale(ctx context.Context, ownerID, locale string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.hasLocale(ownerID, locale), nil
}

func (r *CategoryTranslationRepo) FindByOwnerIDAndLocale(ctx context.Context, ownerID, locale string) (*entity.CategoryTranslation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.translations {
		if t.CategoryID == ownerID && t.Locale == locale {
			c := cloneTranslation(t)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: translation %s/%s", translatable.ErrNotFound, ownerID, locale)
}

func (r *CategoryTranslationRepo) FindByNameAndLocale(ctx context.Context, name, locale string) ([]*entity.CategoryTranslation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.CategoryTranslation
	for _, t := range r.s.translations {
		if t.Name == name && t.Locale == locale {
			c := cloneTranslation(t)
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CategoryTranslationRepo) ExistsByLocaleAndName(ctx context.Context, locale, name string) (bool, error) {
	return r.ExistsByLocaleAndNameExcludingID(ctx, locale, name, "")
}

func (r *CategoryTranslationRepo) ExistsByLocaleAndNameExcludingID(ctx context.Context, locale, name, excludeID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("translation.exists_by_locale_and_name"); err != nil {
		return false, err
	}
	for id, t := range r.s.translations {
		if id != excludeID && t.Locale == locale && t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *CategoryTranslationRepo) Save(ctx context.Context, t *entity.CategoryTranslation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[t.CategoryID]; !ok {
		return fmt.Errorf("%w: category %s", translatable.ErrNotFound, t.CategoryID)
	}
	if err := r.s.checkUnique(t); err != nil {
		return err
	}
	r.s.translations[t.ID] = cloneTranslation(*t)
	return nil
}

func (r *CategoryTranslationRepo) DeleteByOwnerIDAndLocale(ctx context.Context, ownerID, locale string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, t := range r.s.translations {
		if t.CategoryID == ownerID && t.Locale == locale {
			delete(r.s.translations, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *CategoryTranslationRepo) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for id, t := range r.s.translations {
		if t.Locale == locale {
			delete(r.s.translations, id)
			n++
		}
	}
	if err := r.s.fail("translation.delete_by_locale"); err != nil {
		return n, err
	}
	return n, nil
}
