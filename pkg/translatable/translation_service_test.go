package translatable_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/translatable-api/pkg/translatable"
)

func TestTranslationService_ExistsByOwnerID(t *testing.T) {
	s := newFakeStore()
	seed(s)
	s.tags[4] = true
	svc := newLabelService(s, labelRepo{s})
	ctx := context.Background()

	ok, err := svc.ExistsByOwnerID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	// Dueño existente sin traducciones.
	ok, err = svc.ExistsByOwnerID(ctx, 4)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTranslationService_FindByOwnerIDAndLocale(t *testing.T) {
	s := newFakeStore()
	seed(s)
	svc := newLabelService(s, labelRepo{s})
	ctx := context.Background()

	got, err := svc.FindByOwnerIDAndLocale(ctx, 1, "Fr")
	require.NoError(t, err)
	assert.Equal(t, "Livres", got.text)

	_, err = svc.FindByOwnerIDAndLocale(ctx, 2, "fr")
	assert.ErrorIs(t, err, translatable.ErrNotFound)

	_, err = svc.FindByOwnerIDAndLocale(ctx, 2, "")
	assert.ErrorIs(t, err, translatable.ErrInvalidArgument)
}

func TestTranslationService_FindByOwnerIDPage(t *testing.T) {
	s := newFakeStore()
	seed(s)
	svc := newLabelService(s, labelRepo{s})

	page, err := svc.FindByOwnerIDPage(context.Background(), 1, translatable.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "fr", page.Items[0].GetLocale())
}

func TestTranslationService_FindByNameAndLocale(t *testing.T) {
	s := newFakeStore()
	seed(s)
	ctx := context.Background()

	plain := newLabelService(s, labelRepo{s})
	_, err := plain.FindByNameAndLocale(ctx, "Books", "en")
	assert.ErrorIs(t, err, translatable.ErrUnsupported)

	named := newLabelService(s, namedLabelRepo{labelRepo{s}})
	got, err := named.FindByNameAndLocale(ctx, "Books", "EN")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].GetOwnerID())

	got, err = named.FindByNameAndLocale(ctx, "Books", "fr")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTranslationService_Save(t *testing.T) {
	s := newFakeStore()
	seed(s)
	svc := newLabelService(s, labelRepo{s})
	ctx := context.Background()

	saved, err := svc.Save(ctx, &label{id: 21, owner: 2, locale: "es", text: "Música"})
	require.NoError(t, err)
	assert.Equal(t, 21, saved.GetID())

	ok, err := svc.ExistsByOwnerIDAndLocale(ctx, 2, "es")
	require.NoError(t, err)
	assert.True(t, ok)

	saved, err = svc.Save(ctx, &label{id: 99, owner: 42, locale: "es"})
	assert.ErrorIs(t, err, translatable.ErrNotFound)
	assert.Nil(t, saved)
}

func TestTranslationService_DeleteByOwnerIDAndLocale(t *testing.T) {
	s := newFakeStore()
	seed(s)
	svc := newLabelService(s, labelRepo{s})
	ctx := context.Background()

	n, err := svc.DeleteByOwnerIDAndLocale(ctx, 1, "fr")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	// El dueño sigue existiendo.
	assert.True(t, s.tags[1])

	_, err = svc.DeleteByOwnerIDAndLocale(ctx, 1, "fr")
	assert.ErrorIs(t, err, translatable.ErrNotFound)
}

func TestTranslationService_DeleteByLocale(t *testing.T) {
	s := newFakeStore()
	seed(s)
	svc := newLabelService(s, labelRepo{s})
	ctx := context.Background()

	n, err := svc.DeleteByLocale(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, s.tags, 3)

	_, err = svc.DeleteByLocale(ctx, "en")
	assert.ErrorIs(t, err, translatable.ErrInvalidArgument)

	ok, err := svc.ExistsByLocale(ctx, "de")
	require.NoError(t, err)
	assert.True(t, ok)
}
