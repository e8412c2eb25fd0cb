package contracts

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// StateStore owns the back-office State and persists it.
// Usecases mutate through Update; they never write to the key-value store directly.
type StateStore interface {
	// Snapshot returns a deep copy of the current state.
	Snapshot() *domain.State

	// Update runs fn on a working copy of the state. When fn succeeds, every
	// collection it changed is written once and the copy becomes the current
	// state. When fn or a write fails, the current state is left untouched.
	Update(ctx context.Context, fn func(st *domain.State) error) error
}
