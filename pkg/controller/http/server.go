package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/usecase"
	"github.com/secmon-lab/riskmatrix/pkg/utils/metrics"
	"github.com/secmon-lab/riskmatrix/pkg/utils/safe"
)

type Server struct {
	router   *chi.Mux
	uc       *usecase.UseCases
	metrics  *metrics.Metrics
	renderer *renderer
}

type Options func(*Server)

// WithMetrics records request latency into m and serves it at /metrics
func WithMetrics(m *metrics.Metrics) Options {
	return func(s *Server) {
		s.metrics = m
	}
}

func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	rnd, err := newRenderer()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load page templates")
	}
	s.renderer = rnd

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger(s.metrics))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		safe.Write(r.Context(), w, []byte("ok"))
	})

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	// Every page and action route runs inside a browser session
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware(s.uc.Session))

		r.Get("/", s.handlePage)

		r.Post("/lang/toggle", action(s.toggleLanguage))
		r.Post("/nav/{section}", action(s.navigate))
		r.Post("/panel/close", action(s.closePanel))
		r.Post("/panel/{panel}", action(s.openPanel))
		r.Post("/detail/back", action(s.back))

		r.Route("/companies", func(r chi.Router) {
			r.Post("/", action(s.createCompany))
			r.Route("/{id}", func(r chi.Router) {
				r.Post("/", action(s.updateCompany))
				r.Post("/delete", action(s.deleteCompany))
				r.Post("/select", action(s.selectCompany))
				r.Post("/risks", action(s.createCompanyRisk))
				r.Post("/risks/assign", action(s.assignRisk))
				r.Post("/controls", action(s.createCompanyControl))
				r.Post("/controls/assign", action(s.assignControl))
			})
		})

		r.Route("/risks", func(r chi.Router) {
			r.Post("/", action(s.createRisk))
			r.Post("/{id}", action(s.updateRisk))
			r.Post("/{id}/delete", action(s.deleteRisk))
		})

		r.Route("/controls", func(r chi.Router) {
			r.Post("/", action(s.createControl))
			r.Post("/{id}", action(s.updateControl))
			r.Post("/{id}/delete", action(s.deleteControl))
		})
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
