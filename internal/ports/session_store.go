package ports

import (
	"context"
	"errors"
	"location-registry-service/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// Port: holds one registry per operator session for as long as the
// session is alive. Nothing is written anywhere durable.
type SessionStore interface {
	// Start a fresh registry and return its session id.
	Create(ctx context.Context) (string, domain.State, error)
	// Return the current snapshot, or ErrSessionNotFound.
	Get(ctx context.Context, id string) (domain.State, error)
	// Apply actions in order as one step and return the resulting snapshot
	// together with the number of coordinates committed by that step.
	Dispatch(ctx context.Context, id string, actions ...domain.Action) (domain.Outcome, error)
	// Drop the session and its locations.
	Delete(ctx context.Context, id string) error
}
