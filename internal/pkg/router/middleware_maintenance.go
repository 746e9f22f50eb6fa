package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/secureprop/internal/pkg/config"
)

// middlewareMaintenance answers 503 for routes listed under
// app.maintenance.endpoints, or for every route but health when
// app.maintenance.enabled is set.
func middlewareMaintenance(cfg config.Config) Middleware {
	var all bool
	blocked := make(map[string]struct{})
	if cfg != nil {
		all = cfg.GetBool("app.maintenance.enabled")
		for _, route := range cfg.GetArray("app.maintenance.endpoints") {
			blocked[route] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		if !all && len(blocked) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			_, hit := blocked[route]
			if (all && !strings.HasSuffix(route, "/health")) || hit {
				w.Header().Set("Retry-After", "120")
				writeJSON(w, errorResponse{Message: "service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
