package domain

// Display unit for one committed coordinate: an external map view
// addressed by URL, plus the raw coordinate text as a caption.
type Embed struct {
	URL     string
	Caption string
}
