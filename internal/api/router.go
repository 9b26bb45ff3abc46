package api

import (
	"location-registry-service/internal/api/handlers"
	"location-registry-service/internal/ports"
	"net/http"

	"github.com/gorilla/mux"
)

// Dependencies the router hands to its handlers.
type Deps struct {
	Sessions      ports.SessionStore
	Embeds        ports.EmbedURLBuilder
	AuthSDK       ports.AuthSDK
	SessionCookie string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(deps Deps) http.Handler {
	r := mux.NewRouter()

	registry := &handlers.RegistryHandler{
		Sessions: deps.Sessions,
		Embeds:   deps.Embeds,
		Cookie:   deps.SessionCookie,
	}
	diagnostics := &handlers.DiagnosticsHandler{SDK: deps.AuthSDK}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	r.HandleFunc(handlers.AdminLocationsPath, registry.Page).Methods(http.MethodGet)
	r.HandleFunc(handlers.AdminLocationsPath, registry.SubmitForm).Methods(http.MethodPost)

	r.HandleFunc("/api/registry", registry.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/registry", registry.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/api/registry/pending", registry.UpdatePending).Methods(http.MethodPatch)
	r.HandleFunc("/api/registry/submit", registry.Submit).Methods(http.MethodPost)

	r.HandleFunc("/debug/auth-probe", diagnostics.AuthProbe).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)

	// Wrapped outside the router so unmatched requests are logged too.
	return requestIDMiddleware(loggingMiddleware(r))
}
