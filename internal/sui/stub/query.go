package stub

import (
	"context"
	"errors"

	"sui-market-lab/internal/sui"
)

// ErrNotFound is returned when an object is not in the stub store.
var ErrNotFound = errors.New("not found")

// QueryClient implements sui.QueryClient for testing.
type QueryClient struct {
	Owned         map[string][]sui.ChainObject
	Objects       map[string]*sui.ChainObject
	DynamicFields map[string][]sui.DynamicFieldInfo

	// Calls counts invocations per method name.
	Calls map[string]int
}

// NewQueryClient creates a new stub query client.
func NewQueryClient() *QueryClient {
	return &QueryClient{
		Owned:         make(map[string][]sui.ChainObject),
		Objects:       make(map[string]*sui.ChainObject),
		DynamicFields: make(map[string][]sui.DynamicFieldInfo),
		Calls:         make(map[string]int),
	}
}

// GetOwnedObjects retrieves owned objects from the stub store.
func (c *QueryClient) GetOwnedObjects(_ context.Context, owner string, _ sui.ObjectDataOptions) ([]sui.ChainObject, error) {
	c.Calls["GetOwnedObjects"]++
	return c.Owned[owner], nil
}

// GetObject retrieves an object snapshot from the stub store.
func (c *QueryClient) GetObject(_ context.Context, id string, _ sui.ObjectDataOptions) (*sui.ChainObject, error) {
	c.Calls["GetObject"]++
	obj, ok := c.Objects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return obj, nil
}

// GetDynamicFields retrieves child entries from the stub store.
func (c *QueryClient) GetDynamicFields(_ context.Context, parentID string) ([]sui.DynamicFieldInfo, error) {
	c.Calls["GetDynamicFields"]++
	return c.DynamicFields[parentID], nil
}

// AddOwned adds an owned object for an address.
func (c *QueryClient) AddOwned(owner string, obj sui.ChainObject) {
	c.Owned[owner] = append(c.Owned[owner], obj)
	c.Objects[obj.ObjectID] = &obj
}

// AddObject adds an object snapshot to the stub store.
func (c *QueryClient) AddObject(obj *sui.ChainObject) {
	c.Objects[obj.ObjectID] = obj
}

// AddDynamicField adds a child entry under a parent object.
func (c *QueryClient) AddDynamicField(parentID string, field sui.DynamicFieldInfo) {
	c.DynamicFields[parentID] = append(c.DynamicFields[parentID], field)
}
