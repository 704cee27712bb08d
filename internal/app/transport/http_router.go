package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/ticket-analysis-service/internal/app/config"
	"github.com/ijalalfrz/ticket-analysis-service/internal/app/dto"
	"github.com/ijalalfrz/ticket-analysis-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/ticket-analysis-service/internal/pkg/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
// A nil limiter disables rate limiting.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter httptransport.RateLimiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1/tickets", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		if limiter != nil && cfg.Analysis.RateLimitRPS > 0 {
			router.Use(httptransport.RateLimit(limiter, cfg.Analysis.RateLimitRPS))
		}

		router.Post("/analyze", httptransport.MakeHandlerFunc(
			endpts.AnalysisEndpoint.Analyze,
			httptransport.DecodeRequest[dto.AnalyzeRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
