package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/translatable-api/internal/application/usecase"
	"github.com/jhoicas/translatable-api/internal/domain"
	"github.com/jhoicas/translatable-api/internal/testutil/memstore"
	"github.com/jhoicas/translatable-api/pkg/idgen"
)

func TestReadSeed_Latin1(t *testing.T) {
	// "Música" en ISO-8859-1: ú = 0xFA.
	raw := []byte(`[{"translations":{"es":{"name":"M`)
	raw = append(raw, 0xFA)
	raw = append(raw, []byte(`sica"}}}]`)...)

	reqs, err := readSeed(bytes.NewReader(raw), "iso-8859-1")
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "Música", *reqs[0].Translations["es"].Name)
}

func TestReadSeed_Errores(t *testing.T) {
	_, err := readSeed(strings.NewReader(`[]`), "ebcdic")
	assert.Error(t, err)

	_, err = readSeed(strings.NewReader(`[{"translations":{},"extra":true}]`), "")
	assert.Error(t, err)
}

func TestSeed_OmiteDuplicados(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewCategoryUseCase(store.Repos(), store, idgen.Sequence("cat"), zerolog.Nop())

	reqs, err := readSeed(strings.NewReader(`[
		{"translations":{"en":{"name":"Books"},"es":{"name":"Libros"}}},
		{"translations":{"en":{"name":"Books"}}},
		{"translations":{"en":{"name":"Music"}}}
	]`), "")
	require.NoError(t, err)

	created, skipped, err := seed(context.Background(), uc, reqs)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 3, store.CountTranslations())
}

func TestSeed_ErrorDeValidacionCorta(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewCategoryUseCase(store.Repos(), store, idgen.Sequence("cat"), zerolog.Nop())

	reqs, err := readSeed(strings.NewReader(`[{"translations":{}},{"translations":{"en":{"name":"Books"}}}]`), "")
	require.NoError(t, err)

	created, _, err := seed(context.Background(), uc, reqs)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, created)
}
