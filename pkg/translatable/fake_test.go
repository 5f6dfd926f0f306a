package translatable_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/translatable-api/pkg/translatable"
)

// Tipos mínimos para ejercitar los contratos genéricos sin depender del dominio.

type label struct {
	id     int
	owner  int
	locale string
	text   string
}

func (l *label) GetID() int        { return l.id }
func (l *label) GetOwnerID() int   { return l.owner }
func (l *label) GetLocale() string { return l.locale }

type tag struct {
	id     int
	labels []*label
}

func (t *tag) GetID() int               { return t.id }
func (t *tag) GetTranslations() []*label { return t.labels }

var errBoom = errors.New("boom")

// fakeStore guarda copias; Run restaura la instantánea si fn falla.
type fakeStore struct {
	mu     sync.Mutex
	tags   map[int]bool
	labels map[int]label
	failOn string
}

func newFakeStore() *fakeStore {
	return &fakeStore{tags: map[int]bool{}, labels: map[int]label{}}
}

func (s *fakeStore) snapshot() (map[int]bool, map[int]label) {
	tags := make(map[int]bool, len(s.tags))
	for k, v := range s.tags {
		tags[k] = v
	}
	labels := make(map[int]label, len(s.labels))
	for k, v := range s.labels {
		labels[k] = v
	}
	return tags, labels
}

func (s *fakeStore) Run(ctx context.Context, fn func(repos *fakeStore) error) error {
	s.mu.Lock()
	tags, labels := s.snapshot()
	s.mu.Unlock()
	if err := fn(s); err != nil {
		s.mu.Lock()
		s.tags, s.labels = tags, labels
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *fakeStore) ownerLabels(owner int) []*label {
	var out []*label
	for _, l := range s.labels {
		if l.owner == owner {
			c := l
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].locale < out[j].locale })
	return out
}

func (s *fakeStore) hasLocale(owner int, locale string) bool {
	for _, l := range s.labels {
		if l.owner == owner && l.locale == locale {
			return true
		}
	}
	return false
}

func (s *fakeStore) sortedTagIDs() []int {
	ids := make([]int, 0, len(s.tags))
	for id := range s.tags {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func pageOf[T any](items []T, p translatable.PageRequest) []T {
	if p.Offset >= len(items) {
		return nil
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}

// tagRepo implementa TranslatableRepository.
type tagRepo struct{ s *fakeStore }

func (r tagRepo) FindAll(ctx context.Context) ([]*tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*tag
	for _, id := range r.s.sortedTagIDs() {
		out = append(out, &tag{id: id, labels: r.s.ownerLabels(id)})
	}
	return out, nil
}

func (r tagRepo) FindByID(ctx context.Context, id int) (*tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.tags[id] {
		return nil, fmt.Errorf("%w: tag %d", translatable.ErrNotFound, id)
	}
	return &tag{id: id, labels: r.s.ownerLabels(id)}, nil
}

func (r tagRepo) ExistsByIDAndLocale(ctx context.Context, id int, locale string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.tags[id] && r.s.hasLocale(id, locale), nil
}

func (r tagRepo) FindByIDAndLocale(ctx context.Context, id int, locale string) (*tag, error) {
	ok, _ := r.ExistsByIDAndLocale(ctx, id, locale)
	if !ok {
		return nil, translatable.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r tagRepo) FindAllByLocale(ctx context.Context, locale string) ([]*tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*tag
	for _, id := range r.s.sortedTagIDs() {
		if r.s.hasLocale(id, locale) {
			out = append(out, &tag{id: id, labels: r.s.ownerLabels(id)})
		}
	}
	return out, nil
}

func (r tagRepo) FindAllByLocalePage(ctx context.Context, locale string, page translatable.PageRequest) ([]*tag, int, error) {
	all, _ := r.FindAllByLocale(ctx, locale)
	return pageOf(all, page), len(all), nil
}

func (r tagRepo) FindTranslationsByID(ctx context.Context, id int) ([]*label, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.ownerLabels(id), nil
}

func (r tagRepo) FindTranslationsByIDPage(ctx context.Context, id int, page translatable.PageRequest) ([]*label, int, error) {
	all, _ := r.FindTranslationsByID(ctx, id)
	return pageOf(all, page), len(all), nil
}

func (r tagRepo) Save(ctx context.Context, t *tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failOn == "save" {
		return errBoom
	}
	r.s.tags[t.id] = true
	keep := map[int]bool{}
	for _, l := range t.labels {
		keep[l.id] = true
		r.s.labels[l.id] = *l
	}
	for id, l := range r.s.labels {
		if l.owner == t.id && !keep[id] {
			delete(r.s.labels, id)
		}
	}
	return nil
}

func (r tagRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deleteTag(id)
	return nil
}

func (s *fakeStore) deleteTag(id int) {
	for lid, l := range s.labels {
		if l.owner == id {
			delete(s.labels, lid)
		}
	}
	delete(s.tags, id)
}

func (r tagRepo) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, id := range r.s.sortedTagIDs() {
		if r.s.hasLocale(id, locale) {
			r.s.deleteTag(id)
			n++
		}
	}
	if r.s.failOn == "delete" {
		return n, errBoom
	}
	return n, nil
}

func (r tagRepo) DeleteByIDAndLocale(ctx context.Context, id int, locale string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.tags[id] || !r.s.hasLocale(id, locale) {
		return 0, nil
	}
	r.s.deleteTag(id)
	return 1, nil
}

// labelRepo implementa TranslationRepository (sin NameFinder).
type labelRepo struct{ s *fakeStore }

func (r labelRepo) ExistsByOwnerID(ctx context.Context, ownerID int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.ownerLabels(ownerID)) > 0, nil
}

func (r labelRepo) FindByOwnerID(ctx context.Context, ownerID int) ([]*label, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.ownerLabels(ownerID), nil
}

func (r labelRepo) FindByOwnerIDPage(ctx context.Context, ownerID int, page translatable.PageRequest) ([]*label, int, error) {
	all, _ := r.FindByOwnerID(ctx, ownerID)
	return pageOf(all, page), len(all), nil
}

func (r labelRepo) ExistsByLocale(ctx context.Context, locale string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.labels {
		if l.locale == locale {
			return true, nil
		}
	}
	return false, nil
}

func (r labelRepo) ExistsByOwnerIDAndLocale(ctx context.Context, ownerID int, locale string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.hasLocale(ownerID, locale), nil
}

func (r labelRepo) FindByOwnerIDAndLocale(ctx context.Context, ownerID int, locale string) (*label, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.labels {
		if l.owner == ownerID && l.locale == locale {
			c := l
			return &c, nil
		}
	}
	return nil, translatable.ErrNotFound
}

func (r labelRepo) Save(ctx context.Context, l *label) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.tags[l.owner] {
		return translatable.ErrNotFound
	}
	r.s.labels[l.id] = *l
	return nil
}

func (r labelRepo) DeleteByOwnerIDAndLocale(ctx context.Context, ownerID int, locale string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, l := range r.s.labels {
		if l.owner == ownerID && l.locale == locale {
			delete(r.s.labels, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (r labelRepo) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for id, l := range r.s.labels {
		if l.locale == locale {
			delete(r.s.labels, id)
			n++
		}
	}
	return n, nil
}

// namedLabelRepo añade NameFinder.
type namedLabelRepo struct{ labelRepo }

func (r namedLabelRepo) FindByNameAndLocale(ctx context.Context, name, locale string) ([]*label, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*label
	for _, l := range r.s.labels {
		if l.text == name && l.locale == locale {
			c := l
			out = append(out, &c)
		}
	}
	return out, nil
}

type tagService = translatable.TranslatableService[*tag, int, *label]
type labelService = translatable.TranslationService[*label, int]

func newTagService(s *fakeStore) *tagService {
	tx := translatable.MapTx[*fakeStore, translatable.TranslatableRepository[*tag, int, *label]](s,
		func(st *fakeStore) translatable.TranslatableRepository[*tag, int, *label] { return tagRepo{st} })
	return translatable.NewTranslatableService[*tag, int, *label](tagRepo{s}, tx)
}

func newLabelService(s *fakeStore, repo translatable.TranslationRepository[*label, int]) *labelService {
	tx := translatable.MapTx[*fakeStore, translatable.TranslationRepository[*label, int]](s,
		func(*fakeStore) translatable.TranslationRepository[*label, int] { return repo })
	return translatable.NewTranslationService[*label, int](repo, tx)
}

// seed crea tres tags: 1 {en, fr}, 2 {en}, 3 {de}.
func seed(s *fakeStore) {
	s.tags[1], s.tags[2], s.tags[3] = true, true, true
	s.labels[10] = label{id: 10, owner: 1, locale: "en", text: "Books"}
	s.labels[11] = label{id: 11, owner: 1, locale: "fr", text: "Livres"}
	s.labels[20] = label{id: 20, owner: 2, locale: "en", text: "Music"}
	s.labels[30] = label{id: 30, owner: 3, locale: "de", text: "Spiele"}
}
