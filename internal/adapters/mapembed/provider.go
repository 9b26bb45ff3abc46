package mapembed

import (
	"errors"
	"fmt"
	"location-registry-service/internal/domain"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultHost = "maps.google.com"
	DefaultZoom = 15
)

// Provider builds embeddable map-query URLs of the form
// https://<host>/maps?q=<lat>,<lng>&z=<zoom>&output=embed.
type Provider struct {
	host string
	zoom int
}

func NewProvider(host string, zoom int) (*Provider, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultHost
	}
	if strings.ContainsAny(host, "/?#@ ") {
		return nil, fmt.Errorf("map embed provider: invalid host %q", host)
	}

	if zoom == 0 {
		zoom = DefaultZoom
	}
	if zoom < 1 || zoom > 21 {
		return nil, errors.New("map embed provider: zoom must be between 1 and 21")
	}

	return &Provider{host: host, zoom: zoom}, nil
}

// EmbedURL returns the embed address for c. The coordinate text is
// passed through as typed; each part is query-escaped on its own so the
// separating comma stays literal.
func (p *Provider) EmbedURL(c domain.Coordinate) string {
	q := url.QueryEscape(c.Lat) + "," + url.QueryEscape(c.Lng)

	u := url.URL{
		Scheme:   "https",
		Host:     p.host,
		Path:     "/maps",
		RawQuery: "q=" + q + "&z=" + strconv.Itoa(p.zoom) + "&output=embed",
	}
	return u.String()
}
