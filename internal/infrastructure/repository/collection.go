package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/chamados/servicedesk/internal/infrastructure/storage"
)

// errUnchanged lets a modify callback finish without writing the store.
var errUnchanged = errors.New("collection unchanged")

// collection is one named store: a JSON array of M held in a storage backend.
// Every read and every read-modify-write runs under the collection mutex.
type collection[M any] struct {
	mu      sync.Mutex
	backend storage.Backend
	name    string

	// seed fills a store that has never been saved; the seeded content is persisted
	seed func() []M
	// normalize repairs records in place and reports whether anything changed
	normalize func(items []M) bool
}

func newCollection[M any](backend storage.Backend, name string) *collection[M] {
	return &collection[M]{backend: backend, name: name}
}

// read returns a snapshot of the store.
func (c *collection[M]) read(ctx context.Context) ([]M, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// modify loads the store, hands it to fn and saves what fn returns. Nothing is written when fn
// fails; errUnchanged is swallowed.
func (c *collection[M]) modify(ctx context.Context, fn func(items []M) ([]M, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if errors.Is(err, errUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.save(ctx, next)
}

func (c *collection[M]) load(ctx context.Context) ([]M, error) {
	data, err := c.backend.Load(ctx, c.name)
	if errors.Is(err, storage.ErrNotExist) {
		if c.seed == nil {
			return []M{}, nil
		}
		items := c.seed()
		if err := c.save(ctx, items); err != nil {
			return nil, err
		}
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s store: %w", c.name, err)
	}

	var items []M
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s store: %w", c.name, err)
	}
	if items == nil {
		items = []M{}
	}

	if c.normalize != nil && c.normalize(items) {
		if err := c.save(ctx, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (c *collection[M]) save(ctx context.Context, items []M) error {
	if items == nil {
		items = []M{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s store: %w", c.name, err)
	}
	if err := c.backend.Save(ctx, c.name, data); err != nil {
		return fmt.Errorf("save %s store: %w", c.name, err)
	}
	return nil
}
