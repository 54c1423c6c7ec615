package port

import "context"

// ClientStorage is key-value storage scoped to a single client.
// GetItem reports ok=false when the key was never set.
type ClientStorage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
}

// ClientStorageFactory opens the storage of one client.
type ClientStorageFactory interface {
	ForOwner(ownerID string) (ClientStorage, error)
}
