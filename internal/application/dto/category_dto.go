package dto

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/translatable-api/internal/domain"
	"github.com/jhoicas/translatable-api/pkg/translatable"
)

// MaxNameLength longitud máxima del nombre de una traducción (columna varchar(255)).
const MaxNameLength = 255

// Mensajes de validación expuestos al cliente.
const (
	MsgValidation        = "Validation error!"
	MsgTranslationsEmpty = "Translations cannot be empty"
	MsgNameNull          = "Name cannot be null"
	MsgNameBlank         = "Name cannot be blank"
	MsgInvalidLocale     = "Invalid locale"
	MsgDuplicateLocale   = "Duplicate locale"
)

var msgNameTooLong = fmt.Sprintf("Name cannot exceed %d characters", MaxNameLength)

// CategoryTranslationRequest textos de un locale. En creación Name es obligatorio.
type CategoryTranslationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateCategoryRequest entrada para crear una categoría: locale -> textos.
type CreateCategoryRequest struct {
	Translations map[string]CategoryTranslationRequest `json:"translations" validate:"required,min=1"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (parcial por locale).
type UpdateCategoryRequest struct {
	Translations map[string]CategoryTranslationRequest `json:"translations"`
}

// Validate valida la petición y reescribe las claves de Translations a su locale canónico.
func (r *CreateCategoryRequest) Validate() error {
	verr := domain.NewValidationError(MsgValidation)
	if len(r.Translations) == 0 {
		verr.Add("translations", MsgTranslationsEmpty)
		return verr
	}
	r.Translations = normalizeTranslations(r.Translations, true, verr)
	if verr.HasItems() {
		return verr
	}
	return nil
}

// Validate valida la petición y reescribe las claves de Translations a su locale canónico.
// El nombre es opcional, pero si viene no puede estar en blanco.
func (r *UpdateCategoryRequest) Validate() error {
	verr := domain.NewValidationError(MsgValidation)
	r.Translations = normalizeTranslations(r.Translations, false, verr)
	if verr.HasItems() {
		return verr
	}
	return nil
}

// SortedLocales devuelve las claves del mapa en orden ascendente.
func SortedLocales(m map[string]CategoryTranslationRequest) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeTranslations(in map[string]CategoryTranslationRequest, nameRequired bool, verr *domain.ValidationError) map[string]CategoryTranslationRequest {
	out := make(map[string]CategoryTranslationRequest, len(in))
	// Orden fijo para que el informe de claves duplicadas sea determinista.
	for _, key := range SortedLocales(in) {
		tr := in[key]
		field := fmt.Sprintf("translations[%s]", key)
		locale, err := translatable.CanonicalLocale(key)
		if err != nil {
			verr.Add(field, MsgInvalidLocale)
			continue
		}
		if _, dup := out[locale]; dup {
			verr.Add(field, MsgDuplicateLocale)
			continue
		}
		switch {
		case tr.Name == nil:
			if nameRequired {
				verr.Add(field+".name", MsgNameNull)
			}
		case strings.TrimSpace(*tr.Name) == "":
			verr.Add(field+".name", MsgNameBlank)
		case utf8.RuneCountInString(*tr.Name) > MaxNameLength:
			verr.Add(field+".name", msgNameTooLong)
		}
		out[locale] = tr
	}
	return out
}

// CategoryTranslationResponse textos de un locale dentro de CategoryResponse.
type CategoryTranslationResponse struct {
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryResponse salida de una categoría con sus traducciones por locale.
type CategoryResponse struct {
	ID           string                                 `json:"id"`
	Translations map[string]CategoryTranslationResponse `json:"translations"`
	CreatedAt    time.Time                              `json:"created_at"`
	UpdatedAt    time.Time                              `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CategoryTranslationDetailResponse salida de una traducción individual.
type CategoryTranslationDetailResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Locale      string    `json:"locale"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryTranslationListResponse lista paginada de traducciones.
type CategoryTranslationListResponse struct {
	Items []CategoryTranslationDetailResponse `json:"items"`
	Page  PageResponse                        `json:"page"`
}
