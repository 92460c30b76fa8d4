package handler

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"subota/internal/clock"
	"subota/internal/middleware"
	"subota/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the countdown page, the JSON API and the health check
type Handler struct {
	countdownService *service.CountdownService
	clock            clock.Clock
	logger           *zap.Logger
	page             *template.Template
}

// NewHandler creates a new handler instance
func NewHandler(
	countdownService *service.CountdownService,
	clk clock.Clock,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		countdownService: countdownService,
		clock:            clk,
		logger:           logger,
		page:             template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

// Routes builds the HTTP router. rateLimit is the number of requests per
// minute allowed from a single client IP on the page and API routes;
// 0 turns limiting off.
func (h *Handler) Routes(rateLimit int) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer(h.logger))
	router.Use(middleware.RequestLogger(h.logger))

	// Liveness checks stay outside the rate limiter
	router.Get("/health", h.handleHealth)

	router.Group(func(r chi.Router) {
		if rateLimit > 0 {
			r.Use(httprate.LimitByIP(rateLimit, time.Minute))
		}

		r.Get("/", h.handleIndex)

		r.Route("/api", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
			r.Get("/countdown", h.handleCountdown)
		})
	})

	return router
}
