// Package views holds the HTML components served by the admin pages.
package views

import (
	"context"
	"io"
	"location-registry-service/internal/domain"
	"strings"

	"github.com/a-h/templ"
)

// Sandbox flags for embedded map frames: the provider needs scripts and its
// own origin, nothing else.
const embedSandbox = "allow-scripts allow-same-origin allow-popups"

// AdminLocationsView is the data behind the admin locations page.
type AdminLocationsView struct {
	Title   string
	Action  string
	Pending domain.Coordinate
	Embeds  []domain.Embed
}

// AdminLocationsPage renders the full admin page: the coordinate form
// followed by one map embed per committed location.
func AdminLocationsPage(v AdminLocationsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := v.Title
		if title == "" {
			title = "Locations"
		}
		if err := write(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`,
			templ.EscapeString(title),
			`</title></head><body><main class="admin-locations"><h1>`,
			templ.EscapeString(title),
			`</h1>`,
		); err != nil {
			return err
		}
		if err := LocationForm(v.Action, v.Pending).Render(ctx, w); err != nil {
			return err
		}
		if err := EmbedList(v.Embeds).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</main></body></html>`)
	})
}

// LocationForm renders the latitude/longitude inputs holding the pending
// coordinate.
func LocationForm(action string, pending domain.Coordinate) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<form class="location-form" method="post" action="`, templ.EscapeString(action), `">`,
			`<label>Latitude <input type="text" name="lat" placeholder="Latitude" value="`, templ.EscapeString(pending.Lat), `"></label>`,
			`<label>Longitude <input type="text" name="lng" placeholder="Longitude" value="`, templ.EscapeString(pending.Lng), `"></label>`,
			`<button type="submit">Add location</button>`,
			`</form>`,
		)
	})
}

// EmbedList renders embeds in the given order.
func EmbedList(embeds []domain.Embed) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<ul class="location-list">`); err != nil {
			return err
		}
		for _, e := range embeds {
			if err := MapEmbed(e).Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, `</ul>`)
	})
}

// MapEmbed renders one lazily loaded, sandboxed map frame and its caption.
func MapEmbed(e domain.Embed) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<li class="location"><iframe src="`, templ.EscapeString(e.URL), `"`,
			` width="600" height="450" style="border:0"`,
			` loading="lazy" allowfullscreen referrerpolicy="no-referrer-when-downgrade"`,
			` sandbox="`, embedSandbox, `"></iframe>`,
			`<p class="caption">`, templ.EscapeString(e.Caption), `</p></li>`,
		)
	})
}

// RecaptchaContainer renders the mount point for an invisible reCAPTCHA
// challenge.
func RecaptchaContainer(containerID, siteKey string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<div id="`, templ.EscapeString(containerID), `" class="g-recaptcha"`,
			` data-sitekey="`, templ.EscapeString(siteKey), `" data-size="invisible"></div>`,
		)
	})
}

func write(w io.Writer, parts ...string) error {
	_, err := io.WriteString(w, strings.Join(parts, ""))
	return err
}
