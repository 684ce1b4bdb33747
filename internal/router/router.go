package router

import (
	"net/http"

	_ "pet-records/docs"
	"pet-records/internal/domain/cats"
	"pet-records/internal/domain/dogs"
	"pet-records/internal/middleware"
	"pet-records/internal/pages"
	"pet-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => logger.Nop()

	// Opcional: si viene, usa estos servicios. Si no, in-memory.
	Services *Services
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	svcs := opts.Services
	if svcs == nil {
		s := NewMemoryServices()
		svcs = &s
	}

	views := pages.MustNew()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por tipo
	cats.RegisterRoutes(r, svcs.Cats, views, log)
	dogs.RegisterRoutes(r, svcs.Dogs, views, log)

	// Cualquier ruta desconocida, o un método que la ruta no acepta, cae en la página 404.
	r.NotFound(notFoundHandler(views, log))
	r.MethodNotAllowed(notFoundHandler(views, log))

	return r
}

func notFoundHandler(views *pages.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := views.Render(w, http.StatusNotFound, pages.NotFound, pages.Data{
			Title:    "Not Found",
			PageName: "Page Not Found",
			View:     pages.NotFoundView{Page: r.URL.String()},
		}); err != nil {
			log.Error("render failed", map[string]any{"view": pages.NotFound, "err": err.Error()})
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
}
