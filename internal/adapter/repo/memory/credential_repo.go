package memory

import (
	"context"

	"chatagotchi/internal/app/ports"
)

type PlayerCredentialRepo struct {
	store *Store
}

func NewPlayerCredentialRepo(store *Store) PlayerCredentialRepo {
	return PlayerCredentialRepo{store: store}
}

func (r PlayerCredentialRepo) Create(ctx context.Context, credential ports.PlayerCredentialRecord) error {
	defer r.store.lock(ctx)()
	if _, ok := r.store.credentials[credential.UserID]; ok {
		return ports.ErrConflict
	}
	r.store.credentials[credential.UserID] = credential
	return nil
}

func (r PlayerCredentialRepo) GetByUserID(ctx context.Context, userID string) (ports.PlayerCredentialRecord, error) {
	defer r.store.rlock(ctx)()
	credential, ok := r.store.credentials[userID]
	if !ok {
		return ports.PlayerCredentialRecord{}, ports.ErrNotFound
	}
	return credential, nil
}
