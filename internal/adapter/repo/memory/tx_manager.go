package memory

import "context"

// TxManager serializes whole invocations on the store lock, which doubles as
// the per-user mutual exclusion around load-transform-save. The context is
// marked so repository calls inside fn do not re-lock.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(withTx(ctx))
}
