package router

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	mem "pet-shelter-adoption/internal/adapters/storage/memory"
	pg "pet-shelter-adoption/internal/adapters/storage/postgres"
	"pet-shelter-adoption/internal/domain/animals"
	"pet-shelter-adoption/internal/domain/matching"
	"pet-shelter-adoption/internal/middleware"
	"pet-shelter-adoption/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	// Opcional: si viene, el catálogo se lee de Postgres.
	DB *sql.DB

	// Sin DB: catálogo desde archivo JSON; vacío = catálogo embebido.
	CatalogPath string

	Logger        logger.Logger // nil = nop
	EnableMetrics bool
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	repo, err := animalRepo(opts, log)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Services por módulo
	animalsSvc := animals.NewService(repo)
	matchingSvc := matching.NewService(animalsSvc, log)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	matching.RegisterRoutes(r, matchingSvc)

	return r, nil
}

func animalRepo(opts Options, log logger.Logger) (animals.Repository, error) {
	if opts.DB != nil {
		log.Info("catalog source", map[string]any{"source": "postgres"})
		return pg.NewAnimalsRepo(opts.DB), nil
	}

	var (
		catalog []animals.Animal
		err     error
		source  = "embedded"
	)
	if path := strings.TrimSpace(opts.CatalogPath); path != "" {
		source = path
		catalog, err = mem.LoadCatalogFile(path)
	} else {
		catalog, err = mem.SeedCatalog()
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	log.Info("catalog source", map[string]any{"source": source, "animals": len(catalog)})
	return mem.NewAnimalRepo(catalog), nil
}
