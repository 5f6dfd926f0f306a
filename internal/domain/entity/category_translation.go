package entity

import "time"

// CategoryTranslation texto localizado de una categoría. La categoría se referencia solo por ID.
type CategoryTranslation struct {
	ID          string
	CategoryID  string
	Locale      string
	Name        string
	Description *string // nil = sin descripción
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategoryTranslation crea una traducción aún no asociada a una categoría.
func NewCategoryTranslation(id, locale, name string, description *string, now time.Time) *CategoryTranslation {
	now = Timestamp(now)
	return &CategoryTranslation{
		ID:          id,
		Locale:      locale,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GetID implementa translatable.Translation.
func (t *CategoryTranslation) GetID() string { return t.ID }

// GetOwnerID implementa translatable.Translation.
func (t *CategoryTranslation) GetOwnerID() string { return t.CategoryID }

// GetLocale implementa translatable.Translation.
func (t *CategoryTranslation) GetLocale() string { return t.Locale }

// Apply actualización parcial: solo los campos no nil sobrescriben. Devuelve true si algo cambió.
func (t *CategoryTranslation) Apply(name, description *string, now time.Time) bool {
	changed := false
	if name != nil && *name != t.Name {
		t.Name = *name
		changed = true
	}
	if description != nil && (t.Description == nil || *t.Description != *description) {
		d := *description
		t.Description = &d
		changed = true
	}
	if changed {
		now = Timestamp(now)
		if now.After(t.UpdatedAt) {
			t.UpdatedAt = now
		}
	}
	return changed
}
