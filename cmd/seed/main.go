// seed carga categorías desde un archivo JSON usando los mismos casos de uso de la API.
//
// Uso: go run ./cmd/seed [-charset ISO-8859-1] [ruta/categories.json]
// Por defecto lee categories.json del directorio actual. Formato:
//
//	[{"translations": {"en": {"name": "Books"}, "es": {"name": "Libros"}}}]
//
// Las categorías cuyo nombre ya existe en algún locale se omiten.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/translatable-api/internal/application/dto"
	"github.com/jhoicas/translatable-api/internal/application/usecase"
	"github.com/jhoicas/translatable-api/internal/domain"
	"github.com/jhoicas/translatable-api/internal/infrastructure/postgres"
	"github.com/jhoicas/translatable-api/pkg/config"
	"github.com/jhoicas/translatable-api/pkg/idgen"
	"github.com/jhoicas/translatable-api/pkg/logger"
)

type creator interface {
	Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
}

func main() {
	charset := flag.String("charset", "", "codificación del archivo (ISO-8859-1, windows-1252); por defecto UTF-8")
	flag.Parse()

	path := "categories.json"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir JSON: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reqs, err := readSeed(f, *charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar JSON: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ids, err := idgen.New(cfg.App.IDStrategy)
	if err != nil {
		log.Fatal().Err(err).Msg("estrategia de IDs")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	uc := usecase.NewCategoryUseCase(postgres.NewCategoryStore(pool), postgres.NewCategoryTxRunner(pool), ids, log.Zerolog())
	created, skipped, err := seed(ctx, uc, reqs)
	if err != nil {
		log.Fatal().Err(err).Int("created", created).Msg("seed interrumpido")
	}
	fmt.Printf("Cargado %s: %d categorías creadas, %d omitidas\n", path, created, skipped)
}

// readSeed decodifica la lista de categorías, convirtiendo a UTF-8 si se indica charset.
func readSeed(r io.Reader, charset string) ([]dto.CreateCategoryRequest, error) {
	switch strings.ToUpper(strings.TrimSpace(charset)) {
	case "", "UTF-8", "UTF8":
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "WINDOWS-1252", "CP1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
	var reqs []dto.CreateCategoryRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// seed crea cada categoría; los nombres repetidos (BadRequest) se omiten.
// Cualquier otro error corta la carga.
func seed(ctx context.Context, uc creator, reqs []dto.CreateCategoryRequest) (created, skipped int, err error) {
	for i, req := range reqs {
		if _, err := uc.Create(ctx, req); err != nil {
			if errors.Is(err, domain.ErrBadRequest) {
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("categoría %d: %w", i, err)
		}
		created++
	}
	return created, skipped, nil
}
