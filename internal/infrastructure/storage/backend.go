// Package storage holds the places a named JSON document can live. Every store of the
// application is one document holding one JSON array, loaded and saved whole.
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Load when the document has never been saved.
var ErrNotExist = errors.New("storage: document does not exist")

// Backend loads and saves whole documents by name.
type Backend interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}
