// Package store persists channels and global stats behind a small
// key/value interface with memory, file, SQLite and Redis backends.
package store

import (
	"context"
	"sort"
	"strings"
)

// KV is the byte-level storage every backend implements. Get returns
// model.ErrNotFound for a missing key; Delete of a missing key is not an
// error. Keys are returned sorted.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

func filterKeys[V any](m map[string]V, prefix string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}
