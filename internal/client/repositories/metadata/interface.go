// Package metadata is a small key/value store on the local database.
// The session token lives here, under metadata.KeyToken; it is the only
// value that survives restarts.
package metadata

import "context"

// KeyToken is the well-known key holding the bearer token.
const KeyToken = "token"

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
