package handlers

import (
	"bytes"
	"location-registry-service/internal/domain"
	"location-registry-service/internal/platform/obs"
	"location-registry-service/internal/services"
	"location-registry-service/internal/web/views"
	"log"
	"net/http"
)

// AdminLocationsPath is where the admin locations page is served.
const AdminLocationsPath = "/admin/locations"

// Page renders the admin locations page for the caller's registry.
func (h *RegistryHandler) Page(w http.ResponseWriter, r *http.Request) {
	_, state, err := h.session(w, r)
	if err != nil {
		log.Printf("resolve session failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page := views.AdminLocationsPage(views.AdminLocationsView{
		Title:   "Locations",
		Action:  AdminLocationsPath,
		Pending: state.Pending,
		Embeds:  services.RenderLocations(state, h.Embeds),
	})

	var buf bytes.Buffer
	if err := page.Render(r.Context(), &buf); err != nil {
		log.Printf("render admin locations failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// SubmitForm takes the lat/lng form fields as the pending coordinate, submits
// it, and redirects back to the page. A rejected submission keeps the typed
// values in the form.
func (h *RegistryHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	var err error
	defer obs.Time(r.Context(), "registry.SubmitForm")(&err)

	if err = r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	var committed bool
	committed, _, err = h.submit(w, r,
		domain.SetLatitude{Value: r.PostForm.Get("lat")},
		domain.SetLongitude{Value: r.PostForm.Get("lng")},
	)
	if err != nil {
		log.Printf("submit form failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !committed {
		log.Printf("req_id=%s op=registry.SubmitForm rejected=incomplete", obs.RequestID(r.Context()))
	}

	http.Redirect(w, r, AdminLocationsPath, http.StatusSeeOther)
}
