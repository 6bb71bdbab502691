package memory

import (
	"context"

	"chatagotchi/internal/app/ports"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, userID string, events []ports.GameEvent) error {
	defer r.store.lock(ctx)()
	r.store.events[userID] = append(r.store.events[userID], events...)
	return nil
}

// ListByUserID returns up to limit events, newest first.
func (r EventRepo) ListByUserID(ctx context.Context, userID string, limit int) ([]ports.GameEvent, error) {
	defer r.store.rlock(ctx)()
	stored := r.store.events[userID]
	out := make([]ports.GameEvent, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, stored[i])
	}
	return out, nil
}
