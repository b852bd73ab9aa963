// Package storage implements the launcher's persistence surface: an opaque
// key-value store whose values are serialized records. Components agree only
// on keys and value shapes, never on the backing schema.
package storage

import "context"

// Well-known keys. Values are JSON blobs except KeySession, which holds a
// signed session token.
const (
	KeyUsers            = "users"
	KeySession          = "currentSession"
	KeyGraphicsSettings = "graphicsSettings"
	KeyControlSettings  = "controlSettings"
)

// Store is the key-value persistence surface shared by the credential store
// and the settings service. Get returns (nil, nil) for an absent key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
