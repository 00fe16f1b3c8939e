package router

import (
	"database/sql"
	"net/http"

	mem "pet-adoptions/internal/adapters/storage/memory"
	pg "pet-adoptions/internal/adapters/storage/postgres"
	_ "pet-adoptions/internal/docs" // registro del spec swagger
	"pet-adoptions/internal/domain/adoptions"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/metrics"
	"pet-adoptions/internal/middleware"
	"pet-adoptions/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// Rate limit del POST de adopciones; <=0 usa el default.
	AdoptionsPerMinute int

	// Repos inyectables (tests). Si vienen nil se eligen según DB.
	Users     users.Repository
	Pets      pets.Repository
	Adoptions adoptions.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	r.Use(middleware.HTTPMetrics(collector))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	userRepo := opts.Users
	petRepo := opts.Pets
	adoptionRepo := opts.Adoptions

	if opts.DB != nil {
		if userRepo == nil {
			userRepo = pg.NewUsersRepo(opts.DB)
		}
		if petRepo == nil {
			petRepo = pg.NewPetsRepo(opts.DB)
		}
		if adoptionRepo == nil {
			adoptionRepo = pg.NewAdoptionsRepo(opts.DB)
		}
	} else {
		if userRepo == nil {
			userRepo = mem.NewUsersRepo()
		}
		if petRepo == nil {
			petRepo = mem.NewPetsRepo()
		}
		if adoptionRepo == nil {
			adoptionRepo = mem.NewAdoptionsRepo()
		}
	}

	usersSvc := users.NewService(userRepo)
	petsSvc := pets.NewService(petRepo)
	adoptionsSvc := adoptions.NewService(usersSvc, petsSvc, adoptionRepo, log, collector)

	adoptLimit := middleware.NewRateLimiter(opts.AdoptionsPerMinute).Middleware()
	adoptions.RegisterRoutes(r, adoptionsSvc, adoptLimit)

	return r
}
