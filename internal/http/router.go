package http

import (
	"net/http"

	"lifeline/internal/config"
	"lifeline/internal/http/handler"
	mw "lifeline/internal/http/middleware"
	"lifeline/internal/store"
	"lifeline/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(cfg config.Config, st *store.Store, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(log))
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	uh := &handler.UserHandler{Store: st}
	eh := &handler.EventHandler{Store: st}
	ch := &handler.CategoryHandler{Store: st}
	th := &handler.TimelineHandler{Store: st}
	xh := &handler.ExportHandler{Store: st}

	r.Route("/api", func(r chi.Router) {
		r.Get("/user", uh.Get)
		r.Post("/user", uh.Save)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eh.List)
			r.Post("/", eh.Create)
			r.Put("/{id}", eh.Update)
			r.Delete("/{id}", eh.Delete)
		})

		r.Get("/categories", ch.List)
		r.Post("/categories", ch.Add)

		r.Get("/timeline", th.View)
		r.Get("/export/ics", xh.ICS)
	})

	// browser client bundle
	r.Handle("/*", web.Handler())

	return r
}
