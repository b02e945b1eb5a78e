package chi

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/metrics"
)

//go:embed web
var webFS embed.FS

// NewRouter wires the handlers and middleware into a chi router.
func NewRouter(s *Server, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(RecoverJSON(logger))
	r.Use(AccessLog(logger))
	r.Use(metrics.Middleware())

	site, err := fs.Sub(webFS, "web")
	if err != nil {
		// unreachable: web is embedded.
		panic(err)
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFileFS(w, req, site, "index.html")
	})
	r.Handle("/static/*", http.FileServer(http.FS(site)))

	r.Post("/search", s.Search)
	r.Post("/generate_audio", s.GenerateAudio)
	r.Get("/healthz", s.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
