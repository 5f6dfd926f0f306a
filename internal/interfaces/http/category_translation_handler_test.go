package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/translatable-api/internal/application/dto"
	"github.com/jhoicas/translatable-api/internal/application/usecase"
	"github.com/jhoicas/translatable-api/internal/testutil/memstore"
)

// seedTranslations crea Books {en, fr} y Music {en}.
func seedTranslations(t *testing.T) (*fiber.App, *memstore.Store, string) {
	t.Helper()
	app, store := newAPI(t, "")
	books := decode[dto.CategoryResponse](t, call(t, app, http.MethodPost, "/categories",
		`{"translations":{"en":{"name":"Books","description":"Printed"},"fr":{"name":"Livres"}}}`))
	resp := call(t, app, http.MethodPost, "/categories", `{"translations":{"en":{"name":"Music"}}}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	return app, store, books.ID
}

func TestCategoryTranslationHandler_List(t *testing.T) {
	app, _, id := seedTranslations(t)

	list := decode[dto.CategoryTranslationListResponse](t, call(t, app, http.MethodGet, "/categories/"+id+"/translations?limit=1", ""))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "en", list.Items[0].Locale)
	assert.Equal(t, dto.PageResponse{Limit: 1, Offset: 0, Total: 2}, list.Page)

	resp := call(t, app, http.MethodGet, "/categories/nope/translations", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, usecase.MsgCategoryNotFound, decode[dto.ErrorResponse](t, resp).Message)
}

func TestCategoryTranslationHandler_Get(t *testing.T) {
	app, _, id := seedTranslations(t)

	got := decode[dto.CategoryTranslationDetailResponse](t, call(t, app, http.MethodGet, "/categories/"+id+"/translations/FR", ""))
	assert.Equal(t, id, got.CategoryID)
	assert.Equal(t, "fr", got.Locale)
	assert.Equal(t, "Livres", got.Name)
	assert.Nil(t, got.Description)

	resp := call(t, app, http.MethodGet, "/categories/"+id+"/translations/de", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, usecase.MsgCategoryTranslationNotFound, decode[dto.ErrorResponse](t, resp).Message)
}

func TestCategoryTranslationHandler_Search(t *testing.T) {
	app, _, id := seedTranslations(t)

	found := decode[[]dto.CategoryTranslationDetailResponse](t, call(t, app, http.MethodGet, "/categories/translations/search?name=Books&locale=en", ""))
	require.Len(t, found, 1)
	assert.Equal(t, id, found[0].CategoryID)
	require.NotNil(t, found[0].Description)
	assert.Equal(t, "Printed", *found[0].Description)

	none := decode[[]dto.CategoryTranslationDetailResponse](t, call(t, app, http.MethodGet, "/categories/translations/search?name=Books&locale=fr", ""))
	assert.Empty(t, none)

	resp := call(t, app, http.MethodGet, "/categories/translations/search?locale=en", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name is required", decode[dto.ErrorResponse](t, resp).Message)
}

func TestCategoryTranslationHandler_Delete(t *testing.T) {
	app, store, id := seedTranslations(t)

	resp := call(t, app, http.MethodDelete, "/categories/"+id+"/translations/fr", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 2, store.CountCategories())
	assert.Equal(t, 2, store.CountTranslations())

	resp = call(t, app, http.MethodDelete, "/categories/"+id+"/translations/fr", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCategoryTranslationHandler_DeleteByLocale(t *testing.T) {
	app, store, _ := seedTranslations(t)

	deleted := decode[dto.DeletedResponse](t, call(t, app, http.MethodDelete, "/categories/translations/locales/en", ""))
	assert.Equal(t, 2, deleted.Deleted)
	assert.Equal(t, 2, store.CountCategories())
	assert.Equal(t, 1, store.CountTranslations())

	resp := call(t, app, http.MethodDelete, "/categories/translations/locales/en", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
