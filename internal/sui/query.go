package sui

import "context"

// QueryClient defines the read side of a Sui fullnode.
type QueryClient interface {
	// GetOwnedObjects retrieves objects owned by an address.
	GetOwnedObjects(ctx context.Context, owner string, opts ObjectDataOptions) ([]ChainObject, error)

	// GetObject retrieves a single object snapshot by ID.
	GetObject(ctx context.Context, id string, opts ObjectDataOptions) (*ChainObject, error)

	// GetDynamicFields retrieves the child entries of a parent object.
	GetDynamicFields(ctx context.Context, parentID string) ([]DynamicFieldInfo, error)
}
