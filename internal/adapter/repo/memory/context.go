package memory

import "context"

type txKeyType struct{}

var txKey = txKeyType{}

// withTx marks the context as running under the store lock so nested
// repository calls skip locking.

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey, true)
}

func inTx(ctx context.Context) bool {
	held, _ := ctx.Value(txKey).(bool)
	return held
}
