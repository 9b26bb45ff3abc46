package handlers

import (
	"location-registry-service/internal/api/dto"
	"location-registry-service/internal/ports"
	"location-registry-service/internal/services"
	"net/http"
)

// DiagnosticsHandler exposes the authentication SDK probe to the host page.
type DiagnosticsHandler struct {
	SDK ports.AuthSDK
}

func (h *DiagnosticsHandler) AuthProbe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ProbeResponse{OK: services.ProbeAuth(h.SDK)})
}
