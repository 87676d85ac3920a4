package api

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/kavia-common/simple-notes-api/internal/obs"
)

// NewRouter assembles the full HTTP handler: routes, request correlation,
// access logging, and CORS. Middleware wraps in reverse execution order,
// so CORS runs first and can answer preflight requests before anything
// else sees them.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	var handler http.Handler = mux
	handler = obs.AccessLogMiddleware("api", handler)
	handler = obs.RequestContextMiddleware(handler)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
		MaxAge:         86400,
	})
	return c.Handler(handler)
}
