package dto

type CoordinateResponse struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type EmbedResponse struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type RegistryResponse struct {
	Pending   CoordinateResponse   `json:"pending"`
	Locations []CoordinateResponse `json:"locations"`
	Embeds    []EmbedResponse      `json:"embeds"`
	Committed *bool                `json:"committed,omitempty"`
}

// Absent fields are left as they are; an empty string clears the field.
type UpdatePendingRequest struct {
	Lat *string `json:"lat"`
	Lng *string `json:"lng"`
}

type ProbeResponse struct {
	OK bool `json:"ok"`
}
