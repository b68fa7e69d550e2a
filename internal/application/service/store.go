package service

import "context"

// KeyValueStore is the opaque persistence boundary for profiles.
type KeyValueStore interface {
	// Get reports found=false, without error, for an absent key.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
