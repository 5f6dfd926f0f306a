package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/translatable-api/docs"
	"github.com/jhoicas/translatable-api/internal/application/usecase"
	"github.com/jhoicas/translatable-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/translatable-api/internal/interfaces/http"
	"github.com/jhoicas/translatable-api/pkg/config"
	"github.com/jhoicas/translatable-api/pkg/idgen"
	"github.com/jhoicas/translatable-api/pkg/logger"
)

// @title        Translatable API
// @version      1.0
// @description  CRUD de categorías con traducciones por locale.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("id_strategy", cfg.App.IDStrategy).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

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

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	store := postgres.NewCategoryStore(pool)
	txRunner := postgres.NewCategoryTxRunner(pool)
	categoryUC := usecase.NewCategoryUseCase(store, txRunner, ids, log.Zerolog())
	translationUC := usecase.NewCategoryTranslationUseCase(store, txRunner, log.Zerolog())

	app := httpRouter.NewApp(httpRouter.AppConfig{Name: cfg.App.Name, Log: log.Zerolog()})

	// Swagger UI: http://localhost:<port>/docs
	if cfg.HTTP.DocsEnabled {
		path, err := swaggerFile(cfg.HTTP.DocsPath)
		if err != nil {
			log.Warn().Err(err).Msg("swagger deshabilitado")
		} else {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: path,
				Path:     "docs",
				Title:    "Translatable API",
			}))
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:            categoryUC,
		CategoryTranslationUC: translationUC,
		JWTSecret:             cfg.JWT.Secret,
		AppName:               cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// swaggerFile devuelve path si existe; si no, vuelca el documento registrado por docs
// en un archivo temporal (el middleware solo lee desde disco).
func swaggerFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	doc, err := swag.ReadDoc()
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp("", "swagger-*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.WriteString(doc); err != nil {
		return "", err
	}
	return f.Name(), nil
}
