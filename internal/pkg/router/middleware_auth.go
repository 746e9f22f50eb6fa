package router

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// HeaderAdminToken carries the operator token for administrative endpoints.
const HeaderAdminToken = "X-Admin-Token"

// AdminOnly guards an endpoint with a static operator token. An empty token
// disables the endpoint.
func AdminOnly(token string) Middleware {
	token = strings.TrimSpace(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				writeJSON(w, errorResponse{Message: "endpoint is disabled"}, http.StatusForbidden)
				return
			}

			got := strings.TrimSpace(r.Header.Get(HeaderAdminToken))
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
