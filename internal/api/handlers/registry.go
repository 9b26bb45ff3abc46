package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"location-registry-service/internal/api/dto"
	"location-registry-service/internal/domain"
	"location-registry-service/internal/ports"
	"location-registry-service/internal/services"
	"log"
	"net/http"
)

// RegistryHandler drives the caller's location registry, one per session cookie.
type RegistryHandler struct {
	Sessions ports.SessionStore
	Embeds   ports.EmbedURLBuilder
	Cookie   string
}

// Get returns the pending coordinate, committed locations and their embeds.
func (h *RegistryHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, state, err := h.session(w, r)
	if err != nil {
		log.Printf("resolve session failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, h.response(state))
}

// UpdatePending sets the pending latitude and/or longitude.
func (h *RegistryHandler) UpdatePending(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePendingRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	actions := make([]domain.Action, 0, 2)
	if req.Lat != nil {
		actions = append(actions, domain.SetLatitude{Value: *req.Lat})
	}
	if req.Lng != nil {
		actions = append(actions, domain.SetLongitude{Value: *req.Lng})
	}

	out, err := h.dispatch(w, r, actions...)
	if err != nil {
		log.Printf("update pending failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, h.response(out.State))
}

// Submit commits the pending coordinate. An incomplete coordinate is not an
// error: the response reports committed=false and nothing changes.
func (h *RegistryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	committed, state, err := h.submit(w, r)
	if err != nil {
		log.Printf("submit failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := h.response(state)
	res.Committed = &committed

	writeJSON(w, r, http.StatusOK, res)
}

// Delete destroys the caller's registry and expires the cookie.
func (h *RegistryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(h.Cookie)
	if err == nil {
		if err := h.Sessions.Delete(r.Context(), c.Value); err != nil && !errors.Is(err, ports.ErrSessionNotFound) {
			log.Printf("delete session failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// submit applies the given actions followed by Submit in one dispatch and
// reports whether a coordinate was committed.
func (h *RegistryHandler) submit(w http.ResponseWriter, r *http.Request, actions ...domain.Action) (bool, domain.State, error) {
	actions = append(actions, domain.Submit{})
	out, err := h.dispatch(w, r, actions...)
	if err != nil {
		return false, domain.State{}, err
	}
	return out.Committed > 0, out.State, nil
}

// dispatch applies actions to the caller's registry. A session that expires
// between lookup and dispatch is replaced by a fresh one and the dispatch is
// retried once against it.
func (h *RegistryHandler) dispatch(w http.ResponseWriter, r *http.Request, actions ...domain.Action) (domain.Outcome, error) {
	id, state, err := h.session(w, r)
	if err != nil {
		return domain.Outcome{}, err
	}
	if len(actions) == 0 {
		return domain.Outcome{State: state}, nil
	}

	out, err := h.Sessions.Dispatch(r.Context(), id, actions...)
	if !errors.Is(err, ports.ErrSessionNotFound) {
		return out, err
	}

	id, _, err = h.newSession(w, r)
	if err != nil {
		return domain.Outcome{}, err
	}
	return h.Sessions.Dispatch(r.Context(), id, actions...)
}

// session resolves the registry for the request cookie, starting a new one
// (and setting the cookie) when there is none or it has expired.
func (h *RegistryHandler) session(w http.ResponseWriter, r *http.Request) (string, domain.State, error) {
	if c, err := r.Cookie(h.Cookie); err == nil && c.Value != "" {
		state, err := h.Sessions.Get(r.Context(), c.Value)
		if err == nil {
			return c.Value, state, nil
		}
		if !errors.Is(err, ports.ErrSessionNotFound) {
			return "", domain.State{}, err
		}
	}
	return h.newSession(w, r)
}

func (h *RegistryHandler) newSession(w http.ResponseWriter, r *http.Request) (string, domain.State, error) {
	id, state, err := h.Sessions.Create(r.Context())
	if err != nil {
		return "", domain.State{}, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, state, nil
}

func (h *RegistryHandler) response(s domain.State) dto.RegistryResponse {
	res := dto.RegistryResponse{
		Pending:   dto.CoordinateResponse{Lat: s.Pending.Lat, Lng: s.Pending.Lng},
		Locations: make([]dto.CoordinateResponse, 0, len(s.Locations)),
		Embeds:    make([]dto.EmbedResponse, 0, len(s.Locations)),
	}
	for _, c := range s.Locations {
		res.Locations = append(res.Locations, dto.CoordinateResponse{Lat: c.Lat, Lng: c.Lng})
	}
	for _, e := range services.RenderLocations(s, h.Embeds) {
		res.Embeds = append(res.Embeds, dto.EmbedResponse{URL: e.URL, Caption: e.Caption})
	}
	return res
}
