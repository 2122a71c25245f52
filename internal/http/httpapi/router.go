package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"imagefuse/internal/http/handlers"
	"imagefuse/internal/infra"
	"imagefuse/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(app.Log))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/tiers", app.Tiers)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
		r.Post("/v1/merge", app.MergeImages)
	})

	return r
}
