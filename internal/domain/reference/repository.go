package reference

import "context"

// Record is what every reference entity exposes to its store.
type Record interface {
	RecordID() string
	SetRecordID(id string)
	UniqueKey() string
	IsActive() bool
}

// Repository is shared by clients, categories and groups. Create and Update reject a record whose
// UniqueKey collides with another record's with a conflict error.
type Repository[T Record] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) error
	Update(ctx context.Context, id string, fn func(T) error) (T, error)
	Delete(ctx context.Context, id string) error
}

type (
	ClientRepository   = Repository[*Client]
	CategoryRepository = Repository[*Category]
	GroupRepository    = Repository[*Group]
)
