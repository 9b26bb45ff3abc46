package domain

import "fmt"

// Latitude/longitude pair as typed by the operator.
// Both fields are free-form text; nothing here parses them as numbers.
type Coordinate struct {
	Lat string
	Lng string
}

// Report whether both fields are non-empty, the only condition
// a pending coordinate must meet before it can be committed.
func (c Coordinate) Complete() bool { return c.Lat != "" && c.Lng != "" }

// Caption shown under a rendered map embed.
func (c Coordinate) Caption() string {
	return fmt.Sprintf("Lat: %s, Lng: %s", c.Lat, c.Lng)
}
