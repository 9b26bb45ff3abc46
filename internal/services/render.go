package services

import (
	"location-registry-service/internal/domain"
	"location-registry-service/internal/ports"
)

// RenderLocations projects the committed locations of s, in submission
// order, into display units. The pending coordinate is not rendered and s
// is left untouched.
func RenderLocations(s domain.State, builder ports.EmbedURLBuilder) []domain.Embed {
	embeds := make([]domain.Embed, 0, len(s.Locations))
	for _, c := range s.Locations {
		embeds = append(embeds, domain.Embed{
			URL:     builder.EmbedURL(c),
			Caption: c.Caption(),
		})
	}
	return embeds
}
