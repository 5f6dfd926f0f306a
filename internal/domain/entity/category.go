package entity

import (
	"sort"
	"time"
)

// Category es una categoría con textos localizados. Es dueña exclusiva de sus traducciones:
// a lo sumo una por locale, ordenadas por locale ascendente.
type Category struct {
	ID           string
	Translations []*CategoryTranslation
	CreatedAt    time.Time
	UpdatedAt    time.Time

	persisted bool
}

// NewCategory crea una categoría vacía (sin traducciones) con el ID dado.
func NewCategory(id string, now time.Time) *Category {
	now = Timestamp(now)
	return &Category{ID: id, CreatedAt: now, UpdatedAt: now}
}

// MarkPersisted marca la categoría como existente en el almacenamiento.
// Lo llaman los repositorios al cargarla o tras insertarla.
func (c *Category) MarkPersisted() { c.persisted = true }

// IsPersisted indica si la categoría ya existe en el almacenamiento.
func (c *Category) IsPersisted() bool { return c.persisted }

// GetID implementa translatable.Translatable.
func (c *Category) GetID() string { return c.ID }

// GetTranslations implementa translatable.Translatable.
func (c *Category) GetTranslations() []*CategoryTranslation { return c.Translations }

// Translation devuelve la traducción del locale o nil.
func (c *Category) Translation(locale string) *CategoryTranslation {
	for _, t := range c.Translations {
		if t.Locale == locale {
			return t
		}
	}
	return nil
}

// AddTranslation agrega la traducción y la asocia a la categoría.
// Devuelve false si ya existe una traducción para ese locale.
func (c *Category) AddTranslation(t *CategoryTranslation) bool {
	if c.Translation(t.Locale) != nil {
		return false
	}
	t.CategoryID = c.ID
	c.Translations = append(c.Translations, t)
	sort.Slice(c.Translations, func(i, j int) bool {
		return c.Translations[i].Locale < c.Translations[j].Locale
	})
	return true
}

// RemoveTranslation quita la traducción del locale de la colección; se borra al guardar.
func (c *Category) RemoveTranslation(locale string) bool {
	for i, t := range c.Translations {
		if t.Locale == locale {
			c.Translations = append(c.Translations[:i], c.Translations[i+1:]...)
			return true
		}
	}
	return false
}

// Locales devuelve los locales de la categoría en orden ascendente.
func (c *Category) Locales() []string {
	out := make([]string, 0, len(c.Translations))
	for _, t := range c.Translations {
		out = append(out, t.Locale)
	}
	return out
}

// Touch avanza UpdatedAt; nunca lo mueve hacia atrás.
func (c *Category) Touch(now time.Time) {
	now = Timestamp(now)
	if now.After(c.UpdatedAt) {
		c.UpdatedAt = now
	}
}

// Timestamp normaliza a UTC con precisión de microsegundos (la de timestamptz).
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
